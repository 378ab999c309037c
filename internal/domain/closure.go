package domain

type ClosureStatus string

const (
	MonthClosed ClosureStatus = "Fechado"
	MonthOpen   ClosureStatus = "Aberto"
)

// MonthClosure marca um mês contábil ("2026-01") como travado para
// lançamentos e exclusões retroativas no financeiro.
type MonthClosure struct {
	MonthKey string        `json:"mes_ano"`
	Status   ClosureStatus `json:"status"`
}
