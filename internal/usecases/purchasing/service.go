package purchasing

import (
	"context"
	"errors"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/flboutique/boutique-api/pkg/utils"
)

var (
	ErrEmptyOrder      = errors.New("compra sem itens")
	ErrMissingSupplier = errors.New("fornecedor é obrigatório")
	ErrInvalidQuantity = errors.New("quantidade deve ser pelo menos 1")
	ErrInvalidSize     = errors.New("tamanho inválido")
)

// PurchaseItem é um modelo comprado do fornecedor em N unidades.
type PurchaseItem struct {
	Name      string  `json:"nome"`
	Size      string  `json:"tamanho"`
	CostPrice float64 `json:"preco_custo"`
	SalePrice float64 `json:"preco_venda"`
	Quantity  int     `json:"quantidade"`
}

// PurchaseInput descreve uma compra de estoque parcelada.
type PurchaseInput struct {
	Supplier     string               `json:"fornecedor"`
	Items        []PurchaseItem       `json:"itens"`
	Total        float64              `json:"valor_total"`
	Method       domain.PaymentMethod `json:"forma_pagamento"`
	Installments int                  `json:"parcelas"`
	PurchaseDate time.Time            `json:"data_compra"`
	DueDates     []time.Time          `json:"vencimentos,omitempty"`
}

// PurchaseResult devolve as unidades criadas e as parcelas da despesa.
type PurchaseResult struct {
	Products []*domain.Product      `json:"produtos"`
	Entries  []*domain.FinanceEntry `json:"lancamentos"`
}

type Purchaser interface {
	FinalizePurchase(ctx context.Context, input PurchaseInput) (*PurchaseResult, error)
}

type Service struct {
	productRepo repository.ProductRepository
	financier   financing.Financier
}

func NewService(productRepo repository.ProductRepository, financier financing.Financier) Purchaser {
	return &Service{
		productRepo: productRepo,
		financier:   financier,
	}
}

// FinalizePurchase lança a despesa parcelada e insere uma linha Disponível
// por unidade comprada, tudo em um único append por coleção.
func (s *Service) FinalizePurchase(ctx context.Context, input PurchaseInput) (*PurchaseResult, error) {
	if input.Supplier == "" {
		return nil, ErrMissingSupplier
	}

	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var products []*domain.Product
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if !domain.ValidSize(item.Size) {
			return nil, ErrInvalidSize
		}

		for i := 0; i < item.Quantity; i++ {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, err
			}
			products = append(products, &domain.Product{
				ID:        id,
				Name:      item.Name,
				Size:      item.Size,
				CostPrice: item.CostPrice,
				SalePrice: item.SalePrice,
				Status:    domain.ProductAvailable,
			})
		}
	}

	entries, err := s.financier.RecordInstallments(ctx, financing.GenerateInput{
		Total:        input.Total,
		Installments: input.Installments,
		Method:       input.Method,
		Kind:         domain.EntryExpense,
		Origin:       "Compra Estoque",
		Counterparty: input.Supplier,
		BaseDate:     input.PurchaseDate,
		DueDates:     input.DueDates,
	})
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.CreateProducts(ctx, products); err != nil {
		return nil, err
	}

	return &PurchaseResult{Products: products, Entries: entries}, nil
}
