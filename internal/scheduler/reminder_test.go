package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository/mocks"
	"github.com/flboutique/boutique-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestRunNowQueriesLedgerAndBags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	financeRepo := mocks.NewMockFinanceRepository(ctrl)
	bagRepo := mocks.NewMockBagRepository(ctrl)

	now := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	service := &ReminderService{
		config:      ReminderConfig{OverdueDays: 0},
		financeRepo: financeRepo,
		bagRepo:     bagRepo,
		now:         func() time.Time { return now },
	}

	financeRepo.EXPECT().
		ListEntries(gomock.Any()).
		Return([]*domain.FinanceEntry{
			{ID: "f1", Kind: domain.EntrySale, PaymentStatus: domain.PaymentPending,
				DueDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Description: "Mala - Ana (1/1)"},
			{ID: "f2", Kind: domain.EntrySale, PaymentStatus: domain.PaymentPending,
				DueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Description: "Venda Direta - Maria (1/1)"},
		}, nil)

	bagRepo.EXPECT().
		ListBags(gomock.Any()).
		Return([]*domain.Bag{
			{ID: "m1", Status: domain.BagOpen, CustomerName: "Clara",
				ExpectedReturn: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "m2", Status: domain.BagFinalized,
				ExpectedReturn: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

	service.RunNow(context.Background())
}
