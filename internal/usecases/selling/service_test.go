package selling

import (
	"context"
	"testing"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository/mocks"
	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type saleFixture struct {
	productRepo *mocks.MockProductRepository
	financeRepo *mocks.MockFinanceRepository
	closureRepo *mocks.MockClosureRepository
	service     Seller
}

func newSaleFixture(t *testing.T) *saleFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	productRepo := mocks.NewMockProductRepository(ctrl)
	financeRepo := mocks.NewMockFinanceRepository(ctrl)
	closureRepo := mocks.NewMockClosureRepository(ctrl)

	return &saleFixture{
		productRepo: productRepo,
		financeRepo: financeRepo,
		closureRepo: closureRepo,
		service:     NewService(productRepo, financing.NewService(financeRepo, closureRepo)),
	}
}

func TestFinalizeSaleMarksUnitsAndRecordsInstallments(t *testing.T) {
	f := newSaleFixture(t)
	saleDate := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	f.productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*domain.Product{
			{ID: "u1", Name: "Blusa Cropped", Size: "M", Status: domain.ProductAvailable},
			{ID: "u2", Name: "Blusa Cropped", Size: "M", Status: domain.ProductAvailable},
			{ID: "u3", Name: "Blusa Cropped", Size: "M", Status: domain.ProductSold},
			{ID: "u4", Name: "Saia Midi", Size: "Único", Status: domain.ProductAvailable},
		}, nil)

	f.closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return(nil, nil)

	var appended []*domain.FinanceEntry
	f.financeRepo.EXPECT().
		AppendEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []*domain.FinanceEntry) error {
			appended = entries
			return nil
		})

	var marked map[string]domain.ProductStatus
	f.productRepo.EXPECT().
		UpdateStatusBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, statusByID map[string]domain.ProductStatus) (*store.BatchResult, error) {
			marked = statusByID
			return &store.BatchResult{Updated: []string{"u1", "u2", "u4"}}, nil
		})

	result, err := f.service.FinalizeSale(context.Background(), SaleInput{
		CustomerName: "Maria",
		Items: []SaleItem{
			{Name: "Blusa Cropped", Size: "M", Quantity: 2},
			{Name: "Saia Midi", Size: "Único", Quantity: 1},
		},
		Total:        189.90,
		Method:       domain.PaymentCredit,
		Installments: 2,
		SaleDate:     saleDate,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"u1", "u2", "u4"}, result.ProductIDs)

	require.Len(t, appended, 2)
	assert.Equal(t, "Venda Direta - Maria (1/2)", appended[0].Description)
	assert.InDelta(t, 189.90, appended[0].Amount+appended[1].Amount, 0.001)

	require.Len(t, marked, 3)
	for _, status := range marked {
		assert.Equal(t, domain.ProductSold, status)
	}
}

func TestFinalizeSaleInsufficientStockFailsWholeSale(t *testing.T) {
	f := newSaleFixture(t)

	f.productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*domain.Product{
			{ID: "u1", Name: "Blusa Cropped", Size: "M", Status: domain.ProductAvailable},
		}, nil)

	// Nenhuma escrita acontece: nem parcelas, nem baixa de estoque
	_, err := f.service.FinalizeSale(context.Background(), SaleInput{
		CustomerName: "Maria",
		Items: []SaleItem{
			{Name: "Blusa Cropped", Size: "M", Quantity: 2},
		},
		Total:        100,
		Method:       domain.PaymentPix,
		Installments: 1,
		SaleDate:     time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 2, stockErr.Requested)
}

func TestFinalizeSaleClosedMonthKeepsStockIntact(t *testing.T) {
	f := newSaleFixture(t)

	f.productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*domain.Product{
			{ID: "u1", Name: "Blusa Cropped", Size: "M", Status: domain.ProductAvailable},
		}, nil)

	f.closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return([]*domain.MonthClosure{
			{MonthKey: "2026-07", Status: domain.MonthClosed},
		}, nil)

	_, err := f.service.FinalizeSale(context.Background(), SaleInput{
		CustomerName: "Maria",
		Items:        []SaleItem{{Name: "Blusa Cropped", Size: "M", Quantity: 1}},
		Total:        79.90,
		Method:       domain.PaymentPix,
		Installments: 1,
		SaleDate:     time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, financing.ErrMonthClosed)
}

func TestFinalizeSaleEmptyCart(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.service.FinalizeSale(context.Background(), SaleInput{
		CustomerName: "Maria",
		Total:        10,
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}
