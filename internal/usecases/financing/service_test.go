package financing

import (
	"context"
	"testing"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository/mocks"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateManualEntryRespectsClosedMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	financeRepo := mocks.NewMockFinanceRepository(ctrl)
	closureRepo := mocks.NewMockClosureRepository(ctrl)

	service := NewService(financeRepo, closureRepo)

	closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return([]*domain.MonthClosure{
			{MonthKey: "2026-07", Status: domain.MonthClosed},
		}, nil)

	_, err := service.CreateManualEntry(context.Background(), &domain.FinanceEntry{
		EntryDate:     time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		Kind:          domain.EntryExpense,
		Description:   "Aluguel",
		Amount:        1200,
		PaymentMethod: domain.PaymentPix,
		PaymentStatus: domain.PaymentPaid,
	})
	assert.ErrorIs(t, err, ErrMonthClosed)
}

func TestCreateManualEntryOpenMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	financeRepo := mocks.NewMockFinanceRepository(ctrl)
	closureRepo := mocks.NewMockClosureRepository(ctrl)

	service := NewService(financeRepo, closureRepo)

	closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return(nil, nil)

	financeRepo.EXPECT().
		AppendEntries(gomock.Any(), gomock.Len(1)).
		Return(nil)

	entry, err := service.CreateManualEntry(context.Background(), &domain.FinanceEntry{
		EntryDate:     time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Kind:          domain.EntryCapital,
		Description:   "Aporte inicial",
		Amount:        500,
		PaymentMethod: domain.PaymentManual,
		PaymentStatus: domain.PaymentPaid,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	// Vencimento ausente assume a data de lançamento
	assert.Equal(t, entry.EntryDate, entry.DueDate)
}

func TestCreateManualEntryRejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockFinanceRepository(ctrl), mocks.NewMockClosureRepository(ctrl))

	_, err := service.CreateManualEntry(context.Background(), &domain.FinanceEntry{
		EntryDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Amount:    0,
	})
	assert.ErrorIs(t, err, ErrInvalidTotal)
}

func TestDeleteEntryRespectsClosedMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	financeRepo := mocks.NewMockFinanceRepository(ctrl)
	closureRepo := mocks.NewMockClosureRepository(ctrl)

	service := NewService(financeRepo, closureRepo)

	financeRepo.EXPECT().
		GetEntry(gomock.Any(), "f1").
		Return(&domain.FinanceEntry{
			ID:        "f1",
			EntryDate: time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		}, nil)

	closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return([]*domain.MonthClosure{
			{MonthKey: "2026-06", Status: domain.MonthClosed},
		}, nil)

	err := service.DeleteEntry(context.Background(), "f1")
	assert.ErrorIs(t, err, ErrMonthClosed)
}

func TestDeleteEntryReopenedMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	financeRepo := mocks.NewMockFinanceRepository(ctrl)
	closureRepo := mocks.NewMockClosureRepository(ctrl)

	service := NewService(financeRepo, closureRepo)

	financeRepo.EXPECT().
		GetEntry(gomock.Any(), "f1").
		Return(&domain.FinanceEntry{
			ID:        "f1",
			EntryDate: time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		}, nil)

	// Mês fechado e reaberto volta a aceitar exclusões
	closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return([]*domain.MonthClosure{
			{MonthKey: "2026-06", Status: domain.MonthOpen},
		}, nil)

	financeRepo.EXPECT().
		DeleteEntry(gomock.Any(), "f1").
		Return(nil)

	err := service.DeleteEntry(context.Background(), "f1")
	assert.NoError(t, err)
}

func TestRecordInstallmentsAppendsAllParcels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	financeRepo := mocks.NewMockFinanceRepository(ctrl)
	closureRepo := mocks.NewMockClosureRepository(ctrl)

	service := NewService(financeRepo, closureRepo)

	closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return(nil, nil)

	var appended []*domain.FinanceEntry
	financeRepo.EXPECT().
		AppendEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []*domain.FinanceEntry) error {
			appended = entries
			return nil
		})

	entries, err := service.RecordInstallments(context.Background(), GenerateInput{
		Total:        100,
		Installments: 3,
		Method:       domain.PaymentCredit,
		Kind:         domain.EntrySale,
		Origin:       "Venda Direta",
		Counterparty: "Maria",
		BaseDate:     time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, entries, appended)
}

func TestRecordInstallmentsInvalidTotalSkipsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada esperada: entrada inválida não toca a planilha
	service := NewService(mocks.NewMockFinanceRepository(ctrl), mocks.NewMockClosureRepository(ctrl))

	_, err := service.RecordInstallments(context.Background(), GenerateInput{
		Total:        -5,
		Installments: 2,
		BaseDate:     time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidTotal)
}

func TestPendingReceivablesFiltersAndSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	financeRepo := mocks.NewMockFinanceRepository(ctrl)
	closureRepo := mocks.NewMockClosureRepository(ctrl)

	service := NewService(financeRepo, closureRepo)

	financeRepo.EXPECT().
		ListEntries(gomock.Any()).
		Return([]*domain.FinanceEntry{
			{ID: "a", Kind: domain.EntrySale, PaymentStatus: domain.PaymentPending, DueDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "b", Kind: domain.EntrySale, PaymentStatus: domain.PaymentPaid, DueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "c", Kind: domain.EntryExpense, PaymentStatus: domain.PaymentPending, DueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "d", Kind: domain.EntrySale, PaymentStatus: domain.PaymentPending, DueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

	pending, err := service.PendingReceivables(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "d", pending[0].ID)
	assert.Equal(t, "a", pending[1].ID)
}
