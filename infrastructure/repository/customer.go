package repository

import (
	"context"

	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	customerNameColumn     = 2
	customerWhatsAppColumn = 3
	customerAddressColumn  = 4
	customerColumnCount    = 4
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

type customerRepository struct {
	store store.Store
}

func NewCustomerRepository(st store.Store) CustomerRepository {
	return &customerRepository{store: st}
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	table, err := r.store.LoadAll(ctx, customersCollection)
	if err != nil {
		return nil, err
	}

	var customers []*domain.Customer
	quarantined := 0

	for _, row := range table.Rows {
		if len(row) < customerColumnCount || row[0] == "" {
			quarantined++
			continue
		}
		customers = append(customers, &domain.Customer{
			ID:       row[0],
			Name:     row[1],
			WhatsApp: row[2],
			Address:  row[3],
		})
	}

	if quarantined > 0 {
		logrus.Warnf("Coleção %s: %d linha(s) malformada(s) ignorada(s)", customersCollection, quarantined)
	}

	return customers, nil
}

func (r *customerRepository) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customers, err := r.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	for _, customer := range customers {
		if customer.ID == id {
			return customer, nil
		}
	}

	return nil, store.ErrRecordNotFound
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	row := []string{customer.ID, customer.Name, customer.WhatsApp, customer.Address}
	return r.store.Append(ctx, customersCollection, row)
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	updates := []store.CellUpdate{
		{ID: customer.ID, Column: customerNameColumn, Value: customer.Name},
		{ID: customer.ID, Column: customerWhatsAppColumn, Value: customer.WhatsApp},
		{ID: customer.ID, Column: customerAddressColumn, Value: customer.Address},
	}

	result, err := r.store.UpdateCellsBatch(ctx, customersCollection, updates)
	if err != nil {
		return err
	}

	if len(result.Missing) > 0 {
		return store.ErrRecordNotFound
	}

	return nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, id string) error {
	handle, err := r.store.FindRowByID(ctx, customersCollection, id)
	if err != nil {
		return err
	}

	return r.store.DeleteRow(ctx, handle)
}
