package selling

import (
	"context"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/flboutique/boutique-api/pkg/log"
)

// SaleItem é uma linha do carrinho: N unidades de um modelo/tamanho.
type SaleItem struct {
	Name     string `json:"nome"`
	Size     string `json:"tamanho"`
	Quantity int    `json:"quantidade"`
}

// SaleInput descreve uma venda direta fechada no balcão.
type SaleInput struct {
	CustomerName string               `json:"nome_cliente"`
	Items        []SaleItem           `json:"itens"`
	Total        float64              `json:"valor_total"`
	Method       domain.PaymentMethod `json:"forma_pagamento"`
	Installments int                  `json:"parcelas"`
	SaleDate     time.Time            `json:"data_venda"`
}

// SaleResult devolve o que a venda tocou: unidades baixadas e parcelas
// lançadas.
type SaleResult struct {
	ProductIDs []string               `json:"ids_produtos"`
	Entries    []*domain.FinanceEntry `json:"lancamentos"`
}

type Seller interface {
	FinalizeSale(ctx context.Context, input SaleInput) (*SaleResult, error)
}

type Service struct {
	productRepo repository.ProductRepository
	financier   financing.Financier
}

func NewService(productRepo repository.ProductRepository, financier financing.Financier) Seller {
	return &Service{
		productRepo: productRepo,
		financier:   financier,
	}
}

// FinalizeSale aloca unidades Disponíveis para cada item do carrinho,
// lança as parcelas do total final e baixa todas as unidades para
// Vendido em um único batch. Falta de estoque em qualquer item derruba
// a venda inteira antes de qualquer escrita.
func (s *Service) FinalizeSale(ctx context.Context, input SaleInput) (*SaleResult, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}

	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	productIDs, err := s.allocate(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	entries, err := s.financier.RecordInstallments(ctx, financing.GenerateInput{
		Total:        input.Total,
		Installments: input.Installments,
		Method:       input.Method,
		Kind:         domain.EntrySale,
		Origin:       "Venda Direta",
		Counterparty: input.CustomerName,
		BaseDate:     input.SaleDate,
	})
	if err != nil {
		return nil, err
	}

	statusByID := make(map[string]domain.ProductStatus, len(productIDs))
	for _, id := range productIDs {
		statusByID[id] = domain.ProductSold
	}

	result, err := s.productRepo.UpdateStatusBatch(ctx, statusByID)
	if err != nil {
		return nil, err
	}

	if len(result.Missing) > 0 {
		// As parcelas já estão no livro; a baixa parcial fica registrada
		// para correção manual na planilha.
		log.ForContext(ctx).WithField("error", result.Missing).
			Warn("Unidades sumiram entre a alocação e a baixa")
	}

	return &SaleResult{ProductIDs: productIDs, Entries: entries}, nil
}

// allocate escolhe unidades Disponíveis por nome + tamanho, na ordem da
// planilha.
func (s *Service) allocate(ctx context.Context, items []SaleItem) ([]string, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	availableByKey := make(map[string][]string)
	for _, product := range products {
		if product.Status != domain.ProductAvailable {
			continue
		}
		key := product.Name + "|" + product.Size
		availableByKey[key] = append(availableByKey[key], product.ID)
	}

	var allocated []string
	for _, item := range items {
		key := item.Name + "|" + item.Size
		available := availableByKey[key]

		if len(available) < item.Quantity {
			return nil, &StockError{
				Name:      item.Name,
				Size:      item.Size,
				Requested: item.Quantity,
				Available: len(available),
			}
		}

		allocated = append(allocated, available[:item.Quantity]...)
		availableByKey[key] = available[item.Quantity:]
	}

	return allocated, nil
}
