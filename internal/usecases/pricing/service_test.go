package pricing

import (
	"context"
	"testing"

	"github.com/flboutique/boutique-api/infrastructure/repository/mocks"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSuggestWithDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	service := NewService(settingsRepo)

	settingsRepo.EXPECT().
		GetParameters(gomock.Any()).
		Return(map[string]float64{}, nil)

	// (100 + 1.06) * 2.0 * 1.12 = 226.3744 -> 226.37
	suggested, err := service.Suggest(context.Background(), 100)
	require.NoError(t, err)
	assert.InDelta(t, 226.37, suggested, 0.001)
}

func TestSuggestWithStoredParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	service := NewService(settingsRepo)

	settingsRepo.EXPECT().
		GetParameters(gomock.Any()).
		Return(map[string]float64{
			domain.ParamFixedCost: 2.0,
			domain.ParamMarkup:    2.5,
			domain.ParamExtraFee:  1.0,
		}, nil)

	// (40 + 2) * 2.5 * 1.0 = 105.00
	suggested, err := service.Suggest(context.Background(), 40)
	require.NoError(t, err)
	assert.InDelta(t, 105.00, suggested, 0.001)
}

func TestSuggestNonPositiveCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Custo zero nem consulta a planilha
	service := NewService(mocks.NewMockSettingsRepository(ctrl))

	suggested, err := service.Suggest(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, suggested)

	suggested, err = service.Suggest(context.Background(), -15)
	require.NoError(t, err)
	assert.Zero(t, suggested)
}
