package configuring

import (
	"context"
	"testing"

	"github.com/flboutique/boutique-api/infrastructure/repository/mocks"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetMergesStoredWithDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	service := NewService(settingsRepo)

	settingsRepo.EXPECT().
		GetParameters(gomock.Any()).
		Return(map[string]float64{
			domain.ParamCardFee: 9.5,
			domain.ParamMarkup:  2.2,
		}, nil)

	settings, err := service.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9.5, settings.CardFee)
	assert.Equal(t, 2.2, settings.Markup)
	assert.Equal(t, domain.DefaultFixedCost, settings.FixedCost)
	assert.Equal(t, domain.DefaultExtraFee, settings.ExtraFee)
}

func TestSaveWritesAllParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	service := NewService(settingsRepo)

	settingsRepo.EXPECT().
		SaveParameters(gomock.Any(), map[string]float64{
			domain.ParamCardFee:   10,
			domain.ParamFixedCost: 1.5,
			domain.ParamMarkup:    2.0,
			domain.ParamExtraFee:  1.1,
		}).
		Return(nil)

	err := service.Save(context.Background(), &Settings{
		CardFee:   10,
		FixedCost: 1.5,
		Markup:    2.0,
		ExtraFee:  1.1,
	})
	assert.NoError(t, err)
}

func TestSaveRejectsNegativeParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSettingsRepository(ctrl))

	err := service.Save(context.Background(), &Settings{CardFee: -1})
	assert.ErrorIs(t, err, ErrNegativeParameter)
}
