package consignment

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/flboutique/boutique-api/pkg/log"
	"github.com/flboutique/boutique-api/pkg/utils"
)

// DispatchInput monta uma mala para envio.
type DispatchInput struct {
	CustomerID     string    `json:"cliente_id"`
	ProductIDs     []string  `json:"ids_produtos"`
	ShipDate       time.Time `json:"data_envio"`
	ExpectedReturn time.Time `json:"data_prevista_retorno"`
}

// SettleInput fecha o acerto de uma mala: cada peça enviada precisa
// aparecer em SoldIDs ou ReturnedIDs.
type SettleInput struct {
	BagID        string               `json:"id_mala"`
	SoldIDs      []string             `json:"ids_vendidas"`
	ReturnedIDs  []string             `json:"ids_devolvidas"`
	Method       domain.PaymentMethod `json:"forma_pagamento"`
	Installments int                  `json:"parcelas"`
	SettleDate   time.Time            `json:"data_acerto"`
	Total        *float64             `json:"valor_total,omitempty"` // sobrepõe a soma dos preços de venda
}

// SettleResult resume o acerto.
type SettleResult struct {
	Bag     *domain.Bag            `json:"mala"`
	Sold    []string               `json:"ids_vendidas"`
	Entries []*domain.FinanceEntry `json:"lancamentos"`
	Missing []string               `json:"ids_ausentes,omitempty"` // peças que sumiram da planilha
}

type Consigner interface {
	ListBags(ctx context.Context) ([]*domain.Bag, error)
	GetBag(ctx context.Context, id string) (*domain.Bag, error)
	Dispatch(ctx context.Context, input DispatchInput) (*domain.Bag, error)
	Settle(ctx context.Context, input SettleInput) (*SettleResult, error)
	Cancel(ctx context.Context, bagID string) error
}

type Service struct {
	bagRepo      repository.BagRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	financier    financing.Financier
}

func NewService(
	bagRepo repository.BagRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	financier financing.Financier,
) Consigner {
	return &Service{
		bagRepo:      bagRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		financier:    financier,
	}
}

func (s *Service) ListBags(ctx context.Context) ([]*domain.Bag, error) {
	bags, err := s.bagRepo.ListBags(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bags, func(i, j int) bool {
		return bags[i].ShipDate.After(bags[j].ShipDate)
	})

	return bags, nil
}

func (s *Service) GetBag(ctx context.Context, id string) (*domain.Bag, error) {
	bag, err := s.bagRepo.GetBag(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, ErrBagNotFound
	}
	return bag, err
}

// Dispatch cria a mala Aberta e muda cada peça de Disponível para Em Mala.
// Peça que não existe ou não está Disponível derruba o envio inteiro.
func (s *Service) Dispatch(ctx context.Context, input DispatchInput) (*domain.Bag, error) {
	if len(input.ProductIDs) == 0 {
		return nil, ErrEmptyBag
	}

	customer, err := s.customerRepo.GetCustomer(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	statusByID := make(map[string]domain.ProductStatus, len(products))
	for _, product := range products {
		statusByID[product.ID] = product.Status
	}

	var notAvailable []string
	for _, id := range input.ProductIDs {
		if statusByID[id] != domain.ProductAvailable {
			notAvailable = append(notAvailable, id)
		}
	}
	if len(notAvailable) > 0 {
		return nil, &DecisionError{Err: ErrUnitNotAvailable, IDs: notAvailable}
	}

	bagID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	bag := &domain.Bag{
		ID:             bagID,
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		ShipDate:       input.ShipDate,
		ProductIDs:     input.ProductIDs,
		Status:         domain.BagOpen,
		ExpectedReturn: input.ExpectedReturn,
	}

	if err := s.bagRepo.CreateBag(ctx, bag); err != nil {
		return nil, err
	}

	updates := make(map[string]domain.ProductStatus, len(input.ProductIDs))
	for _, id := range input.ProductIDs {
		updates[id] = domain.ProductInBag
	}

	if _, err := s.productRepo.UpdateStatusBatch(ctx, updates); err != nil {
		return nil, err
	}

	return bag, nil
}

// Settle fecha a mala: devolvidas voltam a Disponível, vendidas viram
// Vendido, o total vendido gera UMA série de parcelas e a mala fica
// Finalizada. Toda peça enviada precisa de uma decisão.
func (s *Service) Settle(ctx context.Context, input SettleInput) (*SettleResult, error) {
	bag, err := s.GetBag(ctx, input.BagID)
	if err != nil {
		return nil, err
	}

	if bag.Status != domain.BagOpen {
		return nil, ErrBagNotOpen
	}

	decisions := make(map[string]domain.ProductStatus, len(bag.ProductIDs))
	for _, id := range input.ReturnedIDs {
		decisions[id] = domain.ProductAvailable
	}
	for _, id := range input.SoldIDs {
		decisions[id] = domain.ProductSold
	}

	inBag := make(map[string]bool, len(bag.ProductIDs))
	var undecided []string
	for _, id := range bag.ProductIDs {
		inBag[id] = true
		if _, ok := decisions[id]; !ok {
			undecided = append(undecided, id)
		}
	}
	if len(undecided) > 0 {
		return nil, &DecisionError{Err: ErrMissingDecision, IDs: undecided}
	}

	var outside []string
	for id := range decisions {
		if !inBag[id] {
			outside = append(outside, id)
		}
	}
	if len(outside) > 0 {
		sort.Strings(outside)
		return nil, &DecisionError{Err: ErrDecisionOutsideBag, IDs: outside}
	}

	var entries []*domain.FinanceEntry
	if len(input.SoldIDs) > 0 {
		total, err := s.settleTotal(ctx, input)
		if err != nil {
			return nil, err
		}

		// Acerto sem valor (cortesia ou total negociado em zero) finaliza
		// a mala sem lançamento no livro.
		if total > 0 {
			entries, err = s.recordSettlement(ctx, bag, input, total)
			if err != nil {
				return nil, err
			}
		}
	}

	result, err := s.productRepo.UpdateStatusBatch(ctx, decisions)
	if err != nil {
		return nil, err
	}

	if len(result.Missing) > 0 {
		log.ForContext(ctx).WithField("error", result.Missing).
			Warn("Peças da mala não encontradas na planilha durante o acerto")
	}

	if err := s.bagRepo.UpdateBagStatus(ctx, bag.ID, domain.BagFinalized); err != nil {
		return nil, err
	}

	bag.Status = domain.BagFinalized

	return &SettleResult{
		Bag:     bag,
		Sold:    input.SoldIDs,
		Entries: entries,
		Missing: result.Missing,
	}, nil
}

func (s *Service) recordSettlement(ctx context.Context, bag *domain.Bag, input SettleInput, total float64) ([]*domain.FinanceEntry, error) {
	return s.financier.RecordInstallments(ctx, financing.GenerateInput{
		Total:        total,
		Installments: input.Installments,
		Method:       input.Method,
		Kind:         domain.EntrySale,
		Origin:       "Mala",
		Counterparty: bag.CustomerName,
		BaseDate:     input.SettleDate,
	})
}

// settleTotal soma os preços de venda das peças compradas, a menos que o
// acerto traga um total negociado.
func (s *Service) settleTotal(ctx context.Context, input SettleInput) (float64, error) {
	if input.Total != nil {
		return *input.Total, nil
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return 0, err
	}

	priceByID := make(map[string]float64, len(products))
	for _, product := range products {
		priceByID[product.ID] = product.SalePrice
	}

	total := 0.0
	for _, id := range input.SoldIDs {
		total += priceByID[id]
	}

	return total, nil
}

// Cancel desfaz uma mala aberta: as peças voltam a Disponível e a linha
// da mala é removida.
func (s *Service) Cancel(ctx context.Context, bagID string) error {
	bag, err := s.GetBag(ctx, bagID)
	if err != nil {
		return err
	}

	if bag.Status != domain.BagOpen {
		return ErrBagNotOpen
	}

	updates := make(map[string]domain.ProductStatus, len(bag.ProductIDs))
	for _, id := range bag.ProductIDs {
		updates[id] = domain.ProductAvailable
	}

	result, err := s.productRepo.UpdateStatusBatch(ctx, updates)
	if err != nil {
		return err
	}

	if len(result.Missing) > 0 {
		log.ForContext(ctx).WithField("error", result.Missing).
			Warn("Peças da mala não encontradas na planilha durante o cancelamento")
	}

	return s.bagRepo.DeleteBag(ctx, bagID)
}
