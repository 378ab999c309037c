package inventory

import (
	"context"
	"testing"

	"github.com/flboutique/boutique-api/infrastructure/repository/mocks"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterProductCreatesOneRowPerUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(productRepo)

	var created []*domain.Product
	productRepo.EXPECT().
		CreateProducts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, products []*domain.Product) error {
			created = products
			return nil
		})

	products, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:      "Vestido Longo Floral",
		Size:      "M",
		CostPrice: 60,
		SalePrice: 149.9,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, created, products)

	ids := make(map[string]bool)
	for _, product := range products {
		assert.Equal(t, domain.ProductAvailable, product.Status)
		assert.Equal(t, "Vestido Longo Floral", product.Name)
		assert.False(t, ids[product.ID], "ids devem ser únicos")
		ids[product.ID] = true
	}
}

func TestRegisterProductValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockProductRepository(ctrl))

	tests := []struct {
		name     string
		input    RegisterProductInput
		expected error
	}{
		{
			name:     "Sem nome",
			input:    RegisterProductInput{Size: "M", SalePrice: 10, Quantity: 1},
			expected: ErrMissingName,
		},
		{
			name:     "Tamanho desconhecido",
			input:    RegisterProductInput{Name: "Blusa", Size: "XXG", SalePrice: 10, Quantity: 1},
			expected: ErrInvalidSize,
		},
		{
			name:     "Quantidade zero",
			input:    RegisterProductInput{Name: "Blusa", Size: "M", SalePrice: 10, Quantity: 0},
			expected: ErrInvalidQuantity,
		},
		{
			name:     "Preço de venda zerado",
			input:    RegisterProductInput{Name: "Blusa", Size: "M", Quantity: 1},
			expected: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.RegisterProduct(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestGroupedStockAggregatesByNameAndSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(productRepo)

	productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*domain.Product{
			{ID: "1", Name: "Blusa Cropped", Size: "M", CostPrice: 30, SalePrice: 79.9, Status: domain.ProductAvailable},
			{ID: "2", Name: "Blusa Cropped", Size: "M", CostPrice: 30, SalePrice: 79.9, Status: domain.ProductInBag},
			{ID: "3", Name: "Blusa Cropped", Size: "M", CostPrice: 30, SalePrice: 79.9, Status: domain.ProductSold},
			{ID: "4", Name: "Blusa Cropped", Size: "P", CostPrice: 30, SalePrice: 79.9, Status: domain.ProductAvailable},
			{ID: "5", Name: "Saia Midi", Size: "M", CostPrice: 45, SalePrice: 119.9, Status: domain.ProductAvailable},
		}, nil)

	groups, err := service.GroupedStock(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "Blusa Cropped", groups[0].Name)
	assert.Equal(t, "M", groups[0].Size)
	assert.Equal(t, 1, groups[0].Available)
	assert.Equal(t, 1, groups[0].InBag)
	assert.Equal(t, 1, groups[0].Sold)

	assert.Equal(t, "P", groups[1].Size)
	assert.Equal(t, "Saia Midi", groups[2].Name)
}

func TestRestockCopiesReferenceUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(productRepo)

	productRepo.EXPECT().
		GetProduct(gomock.Any(), "p1").
		Return(&domain.Product{
			ID: "p1", Name: "Saia Midi", Size: "P",
			CostPrice: 40, SalePrice: 99.9, Status: domain.ProductSold,
		}, nil)

	var created []*domain.Product
	productRepo.EXPECT().
		CreateProducts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, products []*domain.Product) error {
			created = products
			return nil
		})

	products, err := service.Restock(context.Background(), "p1", 2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, created, products)

	for _, product := range products {
		assert.NotEqual(t, "p1", product.ID)
		assert.Equal(t, "Saia Midi", product.Name)
		assert.Equal(t, "P", product.Size)
		assert.Equal(t, 99.9, product.SalePrice)
		assert.Equal(t, domain.ProductAvailable, product.Status)
	}
}

func TestRestockValidatesQuantityBeforeLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockProductRepository(ctrl))

	_, err := service.Restock(context.Background(), "p1", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateProductRejectsNonPositiveSalePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockProductRepository(ctrl))

	err := service.UpdateProduct(context.Background(), &domain.Product{
		ID:        "p1",
		Name:      "Saia Midi",
		Size:      "P",
		CostPrice: 40,
		SalePrice: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
