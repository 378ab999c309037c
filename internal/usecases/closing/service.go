package closing

import (
	"context"
	"errors"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/utils"
)

// Primeiro mês com movimento na planilha.
const firstMonthKey = "2026-01"

var (
	ErrFutureMonth     = errors.New("não é possível fechar um mês futuro")
	ErrInvalidMonthKey = errors.New("mês inválido, use o formato AAAA-MM")
)

type Closer interface {
	Months(ctx context.Context) ([]*domain.MonthClosure, error)
	Close(ctx context.Context, monthKey string) error
	Reopen(ctx context.Context, monthKey string) error
	IsClosed(ctx context.Context, date time.Time) (bool, error)
}

type Service struct {
	closureRepo repository.ClosureRepository
	now         func() time.Time
}

func NewService(closureRepo repository.ClosureRepository) Closer {
	return &Service{
		closureRepo: closureRepo,
		now:         time.Now,
	}
}

// Months lista do mês corrente até o primeiro, mais recente primeiro.
// Meses sem linha na coleção aparecem como Abertos.
func (s *Service) Months(ctx context.Context) ([]*domain.MonthClosure, error) {
	closures, err := s.closureRepo.ListClosures(ctx)
	if err != nil {
		return nil, err
	}

	statusByKey := make(map[string]domain.ClosureStatus, len(closures))
	for _, closure := range closures {
		statusByKey[closure.MonthKey] = closure.Status
	}

	first, err := time.Parse(utils.MonthLayout, firstMonthKey)
	if err != nil {
		return nil, err
	}

	now := s.now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var months []*domain.MonthClosure
	for cursor := current; !cursor.Before(first); cursor = cursor.AddDate(0, -1, 0) {
		key := utils.MonthKey(cursor)
		status := domain.MonthOpen
		if stored, ok := statusByKey[key]; ok {
			status = stored
		}
		months = append(months, &domain.MonthClosure{MonthKey: key, Status: status})
	}

	return months, nil
}

func (s *Service) Close(ctx context.Context, monthKey string) error {
	if err := s.validateMonthKey(monthKey); err != nil {
		return err
	}
	return s.closureRepo.SetClosureStatus(ctx, monthKey, domain.MonthClosed)
}

func (s *Service) Reopen(ctx context.Context, monthKey string) error {
	if err := s.validateMonthKey(monthKey); err != nil {
		return err
	}
	return s.closureRepo.SetClosureStatus(ctx, monthKey, domain.MonthOpen)
}

// IsClosed responde se o mês da data está travado.
func (s *Service) IsClosed(ctx context.Context, date time.Time) (bool, error) {
	closures, err := s.closureRepo.ListClosures(ctx)
	if err != nil {
		return false, err
	}

	monthKey := utils.MonthKey(date)
	for _, closure := range closures {
		if closure.MonthKey == monthKey && closure.Status == domain.MonthClosed {
			return true, nil
		}
	}

	return false, nil
}

func (s *Service) validateMonthKey(monthKey string) error {
	month, err := time.Parse(utils.MonthLayout, monthKey)
	if err != nil {
		return ErrInvalidMonthKey
	}

	now := s.now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if month.After(current) {
		return ErrFutureMonth
	}

	return nil
}
