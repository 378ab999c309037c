package financing

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/flboutique/boutique-api/pkg/utils"
)

type Financier interface {
	Statement(ctx context.Context) ([]*domain.FinanceEntry, error)
	PendingReceivables(ctx context.Context) ([]*domain.FinanceEntry, error)
	CreateManualEntry(ctx context.Context, entry *domain.FinanceEntry) (*domain.FinanceEntry, error)
	RecordInstallments(ctx context.Context, input GenerateInput) ([]*domain.FinanceEntry, error)
	ConfirmReceipt(ctx context.Context, id string, amount *float64) error
	DeleteEntry(ctx context.Context, id string) error
}

type Service struct {
	financeRepo repository.FinanceRepository
	closureRepo repository.ClosureRepository
	generator   *Generator
}

func NewService(financeRepo repository.FinanceRepository, closureRepo repository.ClosureRepository) Financier {
	return &Service{
		financeRepo: financeRepo,
		closureRepo: closureRepo,
		generator:   NewGenerator(),
	}
}

// Statement retorna o livro completo, mais recente primeiro.
func (s *Service) Statement(ctx context.Context) ([]*domain.FinanceEntry, error) {
	entries, err := s.financeRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EntryDate.After(entries[j].EntryDate)
	})

	return entries, nil
}

// PendingReceivables lista as parcelas de venda ainda não recebidas,
// vencimento mais próximo primeiro.
func (s *Service) PendingReceivables(ctx context.Context) ([]*domain.FinanceEntry, error) {
	entries, err := s.financeRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	var pending []*domain.FinanceEntry
	for _, entry := range entries {
		if entry.Kind == domain.EntrySale && entry.PaymentStatus == domain.PaymentPending {
			pending = append(pending, entry)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(pending[j].DueDate)
	})

	return pending, nil
}

// CreateManualEntry insere um lançamento avulso (despesa ou aporte).
func (s *Service) CreateManualEntry(ctx context.Context, entry *domain.FinanceEntry) (*domain.FinanceEntry, error) {
	if entry.Amount <= 0 {
		return nil, NewFinanceError(ErrInvalidTotal, apiErrors.ErrInvalidAmount, "")
	}

	if err := s.ensureMonthOpen(ctx, entry.EntryDate); err != nil {
		return nil, err
	}

	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}
		entry.ID = id
	}

	if entry.DueDate.IsZero() {
		entry.DueDate = entry.EntryDate
	}

	if err := s.financeRepo.AppendEntries(ctx, []*domain.FinanceEntry{entry}); err != nil {
		return nil, err
	}

	return entry, nil
}

// RecordInstallments gera as parcelas de uma operação e grava todas de
// uma vez, respeitando o fechamento do mês da data base.
func (s *Service) RecordInstallments(ctx context.Context, input GenerateInput) ([]*domain.FinanceEntry, error) {
	entries, err := s.generator.Generate(input)
	if err != nil {
		return nil, err
	}

	if err := s.ensureMonthOpen(ctx, input.BaseDate); err != nil {
		return nil, err
	}

	if err := s.financeRepo.AppendEntries(ctx, entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// ConfirmReceipt marca uma parcela como paga, corrigindo o valor quando
// o recebido difere do combinado. Recebimento não é gravação retroativa,
// então não passa pela trava de fechamento.
func (s *Service) ConfirmReceipt(ctx context.Context, id string, amount *float64) error {
	if amount != nil && *amount <= 0 {
		return NewFinanceError(ErrInvalidTotal, apiErrors.ErrInvalidAmount, "")
	}

	err := s.financeRepo.ConfirmReceipt(ctx, id, amount)
	if errors.Is(err, store.ErrRecordNotFound) {
		return NewFinanceError(ErrEntryNotFound, apiErrors.ErrRecordNotFound, "")
	}
	return err
}

// DeleteEntry remove um lançamento, desde que o mês dele ainda esteja aberto.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	entry, err := s.financeRepo.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewFinanceError(ErrEntryNotFound, apiErrors.ErrRecordNotFound, "")
		}
		return err
	}

	if err := s.ensureMonthOpen(ctx, entry.EntryDate); err != nil {
		return err
	}

	return s.financeRepo.DeleteEntry(ctx, id)
}

func (s *Service) ensureMonthOpen(ctx context.Context, date time.Time) error {
	closures, err := s.closureRepo.ListClosures(ctx)
	if err != nil {
		return err
	}

	monthKey := utils.MonthKey(date)
	for _, closure := range closures {
		if closure.MonthKey == monthKey && closure.Status == domain.MonthClosed {
			return NewFinanceError(ErrMonthClosed, apiErrors.ErrMonthClosed, monthKey)
		}
	}

	return nil
}
