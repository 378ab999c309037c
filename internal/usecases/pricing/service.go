package pricing

import (
	"context"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/money"
)

type Pricer interface {
	Suggest(ctx context.Context, cost float64) (float64, error)
}

type Service struct {
	settingsRepo repository.SettingsRepository
}

func NewService(settingsRepo repository.SettingsRepository) Pricer {
	return &Service{settingsRepo: settingsRepo}
}

// Suggest calcula o preço de venda sugerido para um custo:
// (custo + custo_fixo) * markup * taxa_extra, arredondado a 2 casas.
// Custo não positivo devolve 0 em vez de erro: o formulário de cadastro
// chama a cada tecla digitada.
func (s *Service) Suggest(ctx context.Context, cost float64) (float64, error) {
	if cost <= 0 {
		return 0, nil
	}

	params, err := s.params(ctx)
	if err != nil {
		return 0, err
	}

	suggested := (cost + params.FixedCost) * params.Markup * params.ExtraFee

	return money.Round(suggested), nil
}

// params mescla a planilha com os padrões: parâmetro ausente não derruba
// a sugestão.
func (s *Service) params(ctx context.Context) (domain.PricingParams, error) {
	stored, err := s.settingsRepo.GetParameters(ctx)
	if err != nil {
		return domain.PricingParams{}, err
	}

	params := domain.DefaultPricingParams()
	if value, ok := stored[domain.ParamFixedCost]; ok {
		params.FixedCost = value
	}
	if value, ok := stored[domain.ParamMarkup]; ok {
		params.Markup = value
	}
	if value, ok := stored[domain.ParamExtraFee]; ok {
		params.ExtraFee = value
	}

	return params, nil
}
