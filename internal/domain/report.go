package domain

// DashboardSummary é a visão geral exibida na primeira tela.
type DashboardSummary struct {
	NetCash          float64 `json:"caixa_liquido"`
	GrossCash        float64 `json:"caixa_bruto"`
	CardFees         float64 `json:"taxas_cartao"`
	Receivables      float64 `json:"a_receber"`
	StockCost        float64 `json:"estoque_custo"`
	AvailableUnits   int     `json:"pecas_disponiveis"`
	MonthSalesCount  int     `json:"vendas_no_mes"`
	MonthSalesAmount float64 `json:"valor_vendas_mes"`
	AverageTicket    float64 `json:"ticket_medio"`
}

// CustomerRevenue é uma posição do ranking de clientes por valor comprado.
type CustomerRevenue struct {
	CustomerName string  `json:"cliente"`
	Total        float64 `json:"total"`
}

// SizeCount é uma fatia da curva de tamanhos vendidos.
type SizeCount struct {
	Size  string `json:"tamanho"`
	Count int    `json:"quantidade"`
}
