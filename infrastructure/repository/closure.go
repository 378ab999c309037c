package repository

import (
	"context"

	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
)

const closureStatusColumn = 2

type ClosureRepository interface {
	ListClosures(ctx context.Context) ([]*domain.MonthClosure, error)
	SetClosureStatus(ctx context.Context, monthKey string, status domain.ClosureStatus) error
}

type closureRepository struct {
	store store.Store
}

func NewClosureRepository(st store.Store) ClosureRepository {
	return &closureRepository{store: st}
}

func (r *closureRepository) ListClosures(ctx context.Context) ([]*domain.MonthClosure, error) {
	table, err := r.store.LoadAll(ctx, closuresCollection)
	if err != nil {
		return nil, err
	}

	var closures []*domain.MonthClosure
	for _, row := range table.Rows {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		closures = append(closures, &domain.MonthClosure{
			MonthKey: row[0],
			Status:   domain.ClosureStatus(row[1]),
		})
	}

	return closures, nil
}

// SetClosureStatus grava o status do mês; meses nunca fechados não têm
// linha, então fechar um mês inédito insere a linha na hora.
func (r *closureRepository) SetClosureStatus(ctx context.Context, monthKey string, status domain.ClosureStatus) error {
	updates := []store.CellUpdate{
		{ID: monthKey, Column: closureStatusColumn, Value: string(status)},
	}

	result, err := r.store.UpdateCellsBatch(ctx, closuresCollection, updates)
	if err != nil {
		return err
	}

	if len(result.Missing) > 0 {
		return r.store.Append(ctx, closuresCollection, []string{monthKey, string(status)})
	}

	return nil
}
