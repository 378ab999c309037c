package customer

import (
	"context"
	"errors"
	"sort"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/utils"
)

var (
	ErrMissingName      = errors.New("nome da cliente é obrigatório")
	ErrCustomerNotFound = errors.New("cliente não encontrada")
)

type Manager interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

type Service struct {
	customerRepo repository.CustomerRepository
}

func NewService(customerRepo repository.CustomerRepository) Manager {
	return &Service{customerRepo: customerRepo}
}

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].Name < customers[j].Name
	})

	return customers, nil
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetCustomer(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	return customer, err
}

func (s *Service) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer.Name == "" {
		return nil, ErrMissingName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	customer.ID = id

	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" {
		return ErrMissingName
	}

	err := s.customerRepo.UpdateCustomer(ctx, customer)
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrCustomerNotFound
	}
	return err
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	err := s.customerRepo.DeleteCustomer(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrCustomerNotFound
	}
	return err
}
