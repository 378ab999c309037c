package inventory

import (
	"context"
	"errors"
	"sort"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/utils"
)

// RegisterProductInput cadastra um modelo com N unidades físicas.
type RegisterProductInput struct {
	Name      string  `json:"nome"`
	Size      string  `json:"tamanho"`
	CostPrice float64 `json:"preco_custo"`
	SalePrice float64 `json:"preco_venda"`
	Quantity  int     `json:"quantidade"`
}

type Inventorier interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	RegisterProduct(ctx context.Context, input RegisterProductInput) ([]*domain.Product, error)
	Restock(ctx context.Context, productID string, quantity int) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	GroupedStock(ctx context.Context) ([]*domain.StockGroup, error)
}

type Service struct {
	productRepo repository.ProductRepository
}

func NewService(productRepo repository.ProductRepository) Inventorier {
	return &Service{productRepo: productRepo}
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

// RegisterProduct insere uma linha por unidade física. Quantidade é
// contagem de linhas na planilha, nunca um campo numérico.
func (s *Service) RegisterProduct(ctx context.Context, input RegisterProductInput) ([]*domain.Product, error) {
	if input.Name == "" {
		return nil, ErrMissingName
	}

	if !domain.ValidSize(input.Size) {
		return nil, ErrInvalidSize
	}

	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if input.SalePrice <= 0 {
		return nil, ErrInvalidPrice
	}

	products := make([]*domain.Product, 0, input.Quantity)
	for i := 0; i < input.Quantity; i++ {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		products = append(products, &domain.Product{
			ID:        id,
			Name:      input.Name,
			Size:      input.Size,
			CostPrice: input.CostPrice,
			SalePrice: input.SalePrice,
			Status:    domain.ProductAvailable,
		})
	}

	if err := s.productRepo.CreateProducts(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// Restock repõe unidades de um modelo já cadastrado, copiando nome,
// tamanho e preços de uma unidade existente.
func (s *Service) Restock(ctx context.Context, productID string, quantity int) ([]*domain.Product, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	reference, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return s.RegisterProduct(ctx, RegisterProductInput{
		Name:      reference.Name,
		Size:      reference.Size,
		CostPrice: reference.CostPrice,
		SalePrice: reference.SalePrice,
		Quantity:  quantity,
	})
}

func (s *Service) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.Name == "" {
		return ErrMissingName
	}

	if !domain.ValidSize(product.Size) {
		return ErrInvalidSize
	}

	if product.SalePrice <= 0 {
		return ErrInvalidPrice
	}

	err := s.productRepo.UpdateProduct(ctx, product)
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	err := s.productRepo.DeleteProduct(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}

// GroupedStock agrega as unidades por nome + tamanho para a visão de
// estoque, ordenado por nome e tamanho.
func (s *Service) GroupedStock(ctx context.Context) ([]*domain.StockGroup, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	groupByKey := make(map[string]*domain.StockGroup)
	var keys []string

	for _, product := range products {
		key := product.Name + "|" + product.Size
		group, ok := groupByKey[key]
		if !ok {
			group = &domain.StockGroup{
				Name:      product.Name,
				Size:      product.Size,
				CostPrice: product.CostPrice,
				SalePrice: product.SalePrice,
			}
			groupByKey[key] = group
			keys = append(keys, key)
		}

		switch product.Status {
		case domain.ProductAvailable:
			group.Available++
		case domain.ProductInBag:
			group.InBag++
		case domain.ProductSold:
			group.Sold++
		}
	}

	groups := make([]*domain.StockGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, groupByKey[key])
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Name != groups[j].Name {
			return groups[i].Name < groups[j].Name
		}
		return groups[i].Size < groups[j].Size
	})

	return groups, nil
}
