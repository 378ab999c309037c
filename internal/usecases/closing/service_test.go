package closing

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

func fixedService(repo *mocks.MockClosureRepository, now time.Time) *Service {
	return &Service{
		closureRepo: repo,
		now:         func() time.Time { return now },
	}
}

func TestMonthsListsCurrentBackToFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	closureRepo := mocks.NewMockClosureRepository(ctrl)
	service := fixedService(closureRepo, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

	closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return([]*domain.MonthClosure{
			{MonthKey: "2026-01", Status: domain.MonthClosed},
		}, nil)

	months, err := service.Months(context.Background())
	require.NoError(t, err)
	require.Len(t, months, 3)

	assert.Equal(t, "2026-03", months[0].MonthKey)
	assert.Equal(t, domain.MonthOpen, months[0].Status)
	assert.Equal(t, "2026-02", months[1].MonthKey)
	assert.Equal(t, domain.MonthOpen, months[1].Status)
	assert.Equal(t, "2026-01", months[2].MonthKey)
	assert.Equal(t, domain.MonthClosed, months[2].Status)
}

func TestCloseAndReopen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	closureRepo := mocks.NewMockClosureRepository(ctrl)
	service := fixedService(closureRepo, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))

	closureRepo.EXPECT().
		SetClosureStatus(gomock.Any(), "2026-07", domain.MonthClosed).
		Return(nil)
	require.NoError(t, service.Close(context.Background(), "2026-07"))

	closureRepo.EXPECT().
		SetClosureStatus(gomock.Any(), "2026-07", domain.MonthOpen).
		Return(nil)
	require.NoError(t, service.Reopen(context.Background(), "2026-07"))
}

func TestCloseRejectsFutureMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	closureRepo := mocks.NewMockClosureRepository(ctrl)
	service := fixedService(closureRepo, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))

	err := service.Close(context.Background(), "2026-09")
	assert.ErrorIs(t, err, ErrFutureMonth)
}

func TestIsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	closureRepo := mocks.NewMockClosureRepository(ctrl)
	service := fixedService(closureRepo, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))

	closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return([]*domain.MonthClosure{
			{MonthKey: "2026-06", Status: domain.MonthClosed},
			{MonthKey: "2026-07", Status: domain.MonthOpen},
		}, nil).
		Times(2)

	closed, err := service.IsClosed(context.Background(), time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = service.IsClosed(context.Background(), time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, closed)
}
