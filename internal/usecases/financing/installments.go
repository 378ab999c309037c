package financing

import (
	"fmt"
	"time"

	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Dias entre um vencimento e o seguinte quando não há lista customizada.
const installmentIntervalDays = 30

// GenerateInput descreve uma venda, compra ou lançamento a parcelar.
type GenerateInput struct {
	Total        float64
	Installments int
	Method       domain.PaymentMethod
	Kind         domain.EntryKind
	Origin       string // "Venda Direta", "Mala", "Compra Estoque", ...
	Counterparty string // cliente ou fornecedor
	BaseDate     time.Time
	DueDates     []time.Time // opcional; quando presente deve ter uma data por parcela
}

// Generator converte um total parcelado nas linhas do livro financeiro.
// O relógio é injetável para os testes controlarem o "hoje" da regra do Pix.
type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate produz uma linha por parcela. A soma das parcelas é sempre
// exatamente o total: a divisão arredonda para 2 casas e a diferença
// residual é absorvida pela última parcela.
func (g *Generator) Generate(input GenerateInput) ([]*domain.FinanceEntry, error) {
	if input.Total <= 0 {
		return nil, ErrInvalidTotal
	}

	if input.Installments < 1 {
		return nil, ErrInvalidInstallments
	}

	if len(input.DueDates) > 0 && len(input.DueDates) != input.Installments {
		return nil, ErrDueDateCount
	}

	count := input.Installments

	total := decimal.NewFromFloat(input.Total)
	base := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	remainder := total.Sub(base.Mul(decimal.NewFromInt(int64(count)))).Round(2)

	entries := make([]*domain.FinanceEntry, 0, count)

	for i := 0; i < count; i++ {
		amount := base
		if i == count-1 {
			amount = base.Add(remainder)
		}

		dueDate := g.dueDate(input, i)

		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		value, _ := amount.Float64()

		entries = append(entries, &domain.FinanceEntry{
			ID:            id,
			EntryDate:     input.BaseDate,
			DueDate:       dueDate,
			Kind:          input.Kind,
			Description:   fmt.Sprintf("%s - %s (%d/%d)", input.Origin, input.Counterparty, i+1, count),
			Amount:        value,
			PaymentMethod: input.Method,
			PaymentStatus: g.paymentStatus(input.Method, dueDate),
		})
	}

	return entries, nil
}

func (g *Generator) dueDate(input GenerateInput, index int) time.Time {
	if len(input.DueDates) > 0 {
		return input.DueDates[index]
	}

	if input.Installments == 1 {
		return input.BaseDate
	}

	return input.BaseDate.AddDate(0, 0, installmentIntervalDays*(index+1))
}

// paymentStatus aplica a regra de liquidação por forma de pagamento:
// dinheiro e débito caem na conta na hora; Pix conta como pago se o
// vencimento não está no futuro; o resto nasce pendente.
func (g *Generator) paymentStatus(method domain.PaymentMethod, dueDate time.Time) domain.PaymentStatus {
	switch method {
	case domain.PaymentCash, domain.PaymentDebit:
		return domain.PaymentPaid
	case domain.PaymentPix:
		// Dia calendário local, não o dia UTC: Truncate cortaria no fuso
		// errado para vendas feitas à noite.
		now := g.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if !dueDate.After(today) {
			return domain.PaymentPaid
		}
	}

	return domain.PaymentPending
}
