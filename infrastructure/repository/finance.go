package repository

import (
	"context"

	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/money"
	"github.com/flboutique/boutique-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	financeAmountColumn = 6
	financeStatusColumn = 8
	financeColumnCount  = 8
)

type FinanceRepository interface {
	ListEntries(ctx context.Context) ([]*domain.FinanceEntry, error)
	AppendEntries(ctx context.Context, entries []*domain.FinanceEntry) error
	ConfirmReceipt(ctx context.Context, id string, amount *float64) error
	DeleteEntry(ctx context.Context, id string) error
	GetEntry(ctx context.Context, id string) (*domain.FinanceEntry, error)
}

type financeRepository struct {
	store store.Store
}

func NewFinanceRepository(st store.Store) FinanceRepository {
	return &financeRepository{store: st}
}

func (r *financeRepository) ListEntries(ctx context.Context) ([]*domain.FinanceEntry, error) {
	table, err := r.store.LoadAll(ctx, financeCollection)
	if err != nil {
		return nil, err
	}

	var entries []*domain.FinanceEntry
	quarantined := 0

	for _, row := range table.Rows {
		entry, ok := parseFinanceRow(row)
		if !ok {
			quarantined++
			continue
		}
		entries = append(entries, entry)
	}

	if quarantined > 0 {
		logrus.Warnf("Coleção %s: %d linha(s) malformada(s) ignorada(s)", financeCollection, quarantined)
	}

	return entries, nil
}

func (r *financeRepository) GetEntry(ctx context.Context, id string) (*domain.FinanceEntry, error) {
	entries, err := r.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}

	return nil, store.ErrRecordNotFound
}

func (r *financeRepository) AppendEntries(ctx context.Context, entries []*domain.FinanceEntry) error {
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = financeToRow(entry)
	}

	return r.store.AppendBatch(ctx, financeCollection, rows)
}

// ConfirmReceipt marca uma parcela pendente como paga, com correção
// opcional do valor quando o recebido difere do combinado.
func (r *financeRepository) ConfirmReceipt(ctx context.Context, id string, amount *float64) error {
	updates := []store.CellUpdate{
		{ID: id, Column: financeStatusColumn, Value: string(domain.PaymentPaid)},
	}
	if amount != nil {
		updates = append(updates, store.CellUpdate{
			ID: id, Column: financeAmountColumn, Value: money.ToCell(*amount),
		})
	}

	result, err := r.store.UpdateCellsBatch(ctx, financeCollection, updates)
	if err != nil {
		return err
	}

	if len(result.Missing) > 0 {
		return store.ErrRecordNotFound
	}

	return nil
}

func (r *financeRepository) DeleteEntry(ctx context.Context, id string) error {
	handle, err := r.store.FindRowByID(ctx, financeCollection, id)
	if err != nil {
		return err
	}

	return r.store.DeleteRow(ctx, handle)
}

func parseFinanceRow(row []string) (*domain.FinanceEntry, bool) {
	if len(row) < financeColumnCount || row[0] == "" {
		return nil, false
	}

	entryDate, err := utils.ParseDate(row[1])
	if err != nil {
		return nil, false
	}

	dueDate, err := utils.ParseDate(row[2])
	if err != nil {
		return nil, false
	}

	return &domain.FinanceEntry{
		ID:            row[0],
		EntryDate:     *entryDate,
		DueDate:       *dueDate,
		Kind:          domain.EntryKind(row[3]),
		Description:   row[4],
		Amount:        money.Parse(row[5]),
		PaymentMethod: domain.PaymentMethod(row[6]),
		PaymentStatus: domain.PaymentStatus(row[7]),
	}, true
}

func financeToRow(entry *domain.FinanceEntry) []string {
	return []string{
		entry.ID,
		utils.FormatDate(entry.EntryDate),
		utils.FormatDate(entry.DueDate),
		string(entry.Kind),
		entry.Description,
		money.ToCell(entry.Amount),
		string(entry.PaymentMethod),
		string(entry.PaymentStatus),
	}
}
