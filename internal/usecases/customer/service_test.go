package customer

import (
	"context"
	"testing"

	"github.com/flboutique/boutique-api/infrastructure/repository/mocks"
	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListCustomersSortedByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)
	repo.EXPECT().ListCustomers(gomock.Any()).Return([]*domain.Customer{
		{ID: "c2", Name: "Maria"},
		{ID: "c1", Name: "Ana"},
	}, nil)

	service := NewService(repo)

	customers, err := service.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Ana", customers[0].Name)
	assert.Equal(t, "Maria", customers[1].Name)
}

func TestCreateCustomerFillsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)

	var saved *domain.Customer
	repo.EXPECT().
		CreateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, customer *domain.Customer) error {
			saved = customer
			return nil
		})

	service := NewService(repo)

	created, err := service.CreateCustomer(context.Background(), &domain.Customer{
		Name:     "Fernanda",
		WhatsApp: "11999990000",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.ID, saved.ID)
}

func TestCreateCustomerRequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockCustomerRepository(ctrl))

	_, err := service.CreateCustomer(context.Background(), &domain.Customer{WhatsApp: "11999990000"})
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestGetCustomerTranslatesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)
	repo.EXPECT().
		GetCustomer(gomock.Any(), "fantasma").
		Return(nil, store.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.GetCustomer(context.Background(), "fantasma")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestDeleteCustomerTranslatesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)
	repo.EXPECT().
		DeleteCustomer(gomock.Any(), "fantasma").
		Return(store.ErrRecordNotFound)

	service := NewService(repo)

	err := service.DeleteCustomer(context.Background(), "fantasma")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
