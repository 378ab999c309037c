package domain

import "time"

// EntryKind classifica um lançamento do livro financeiro.
type EntryKind string

const (
	EntrySale    EntryKind = "Venda"
	EntryExpense EntryKind = "Despesa"
	EntryCapital EntryKind = "Entrada"
)

type PaymentMethod string

const (
	PaymentPix    PaymentMethod = "Pix"
	PaymentCash   PaymentMethod = "Dinheiro"
	PaymentCredit PaymentMethod = "Cartão de Crédito"
	PaymentDebit  PaymentMethod = "Cartão de Débito"
	PaymentBoleto PaymentMethod = "Boleto"
	PaymentManual PaymentMethod = "Manual"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Pago"
	PaymentPending PaymentStatus = "Pendente"
)

// FinanceEntry é uma linha da coleção Financeiro: uma parcela, uma despesa
// ou um aporte. A descrição segue a convenção
// "<origem> - <contraparte> (<parcela>/<total>)".
type FinanceEntry struct {
	ID            string        `json:"id"`
	EntryDate     time.Time     `json:"data_lancamento"`
	DueDate       time.Time     `json:"data_vencimento"`
	Kind          EntryKind     `json:"tipo"`
	Description   string        `json:"descricao"`
	Amount        float64       `json:"valor"`
	PaymentMethod PaymentMethod `json:"forma_pagamento"`
	PaymentStatus PaymentStatus `json:"status_pagamento"`
}
