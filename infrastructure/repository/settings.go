package repository

import (
	"context"
	"errors"

	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/money"
)

type SettingsRepository interface {
	GetParameters(ctx context.Context) (map[string]float64, error)
	SaveParameters(ctx context.Context, params map[string]float64) error
}

type settingsRepository struct {
	store store.Store
}

func NewSettingsRepository(st store.Store) SettingsRepository {
	return &settingsRepository{store: st}
}

// GetParameters lê todos os parâmetros numéricos da coleção. Coleção
// ausente vale como vazia: os serviços completam com os padrões.
func (r *settingsRepository) GetParameters(ctx context.Context) (map[string]float64, error) {
	table, err := r.store.LoadAll(ctx, settingsCollection)
	if err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			return map[string]float64{}, nil
		}
		return nil, err
	}

	params := make(map[string]float64)
	for _, row := range table.Rows {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		params[row[0]] = money.Parse(row[1])
	}

	return params, nil
}

// SaveParameters regrava a coleção inteira. O conjunto de parâmetros é
// pequeno e fixo; regravar é mais simples do que diferenciar linha a linha.
func (r *settingsRepository) SaveParameters(ctx context.Context, params map[string]float64) error {
	header := CollectionHeaders()[settingsCollection]

	rows := make([][]string, 0, len(params))
	for _, param := range orderedParams() {
		value, ok := params[param]
		if !ok {
			continue
		}
		rows = append(rows, []string{param, money.ToCell(value)})
	}

	return r.store.ReplaceAll(ctx, settingsCollection, header, rows)
}

// orderedParams mantém a planilha legível com os parâmetros sempre na
// mesma ordem.
func orderedParams() []string {
	return []string{domain.ParamCardFee, domain.ParamFixedCost, domain.ParamMarkup, domain.ParamExtraFee}
}
