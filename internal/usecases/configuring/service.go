package configuring

import (
	"context"
	"errors"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/internal/domain"
)

var ErrNegativeParameter = errors.New("parâmetro de configuração não pode ser negativo")

// Settings é o conjunto completo de parâmetros ajustáveis.
type Settings struct {
	CardFee   float64 `json:"taxa_cartao"`
	FixedCost float64 `json:"custo_fixo"`
	Markup    float64 `json:"markup"`
	ExtraFee  float64 `json:"taxa_extra"`
}

type Configurer interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}

type Service struct {
	settingsRepo repository.SettingsRepository
}

func NewService(settingsRepo repository.SettingsRepository) Configurer {
	return &Service{settingsRepo: settingsRepo}
}

// Get devolve os parâmetros gravados, completando ausentes com os padrões.
func (s *Service) Get(ctx context.Context) (*Settings, error) {
	stored, err := s.settingsRepo.GetParameters(ctx)
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		CardFee:   domain.DefaultCardFee,
		FixedCost: domain.DefaultFixedCost,
		Markup:    domain.DefaultMarkup,
		ExtraFee:  domain.DefaultExtraFee,
	}

	if value, ok := stored[domain.ParamCardFee]; ok {
		settings.CardFee = value
	}
	if value, ok := stored[domain.ParamFixedCost]; ok {
		settings.FixedCost = value
	}
	if value, ok := stored[domain.ParamMarkup]; ok {
		settings.Markup = value
	}
	if value, ok := stored[domain.ParamExtraFee]; ok {
		settings.ExtraFee = value
	}

	return settings, nil
}

// Save regrava o conjunto inteiro de parâmetros.
func (s *Service) Save(ctx context.Context, settings *Settings) error {
	if settings.CardFee < 0 || settings.FixedCost < 0 || settings.Markup < 0 || settings.ExtraFee < 0 {
		return ErrNegativeParameter
	}

	return s.settingsRepo.SaveParameters(ctx, map[string]float64{
		domain.ParamCardFee:   settings.CardFee,
		domain.ParamFixedCost: settings.FixedCost,
		domain.ParamMarkup:    settings.Markup,
		domain.ParamExtraFee:  settings.ExtraFee,
	})
}
