package domain

// Parâmetros numéricos da coleção Configuracoes.
const (
	ParamCardFee   = "taxa_cartao"
	ParamFixedCost = "custo_fixo"
	ParamMarkup    = "markup"
	ParamExtraFee  = "taxa_extra"
)

// Valores usados quando a planilha ainda não tem a configuração.
const (
	DefaultCardFee   = 12.0
	DefaultFixedCost = 1.06
	DefaultMarkup    = 2.0
	DefaultExtraFee  = 1.12
)

// PricingParams são os parâmetros da fórmula de sugestão de preço:
// (custo + custo_fixo) * markup * taxa_extra.
type PricingParams struct {
	FixedCost float64 `json:"custo_fixo"`
	Markup    float64 `json:"markup"`
	ExtraFee  float64 `json:"taxa_extra"`
}

func DefaultPricingParams() PricingParams {
	return PricingParams{
		FixedCost: DefaultFixedCost,
		Markup:    DefaultMarkup,
		ExtraFee:  DefaultExtraFee,
	}
}
