package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/flboutique/boutique-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// ManualEntryRequest é o corpo de POST /v1/finance/entries: despesas e
// aportes lançados direto no livro, fora do fluxo de vendas.
type ManualEntryRequest struct {
	EntryDate   string  `json:"data_lancamento"`
	Kind        string  `json:"tipo"`
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
	Method      string  `json:"forma_pagamento"`
	Status      string  `json:"status_pagamento"`
}

// ConfirmReceiptRequest pode corrigir o valor recebido no momento da baixa.
type ConfirmReceiptRequest struct {
	Amount *float64 `json:"valor,omitempty"`
}

func Statement(service financing.Financier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.Statement(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar o livro financeiro")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar o livro financeiro", nil)
			return
		}

		writeJSON(w, entries)
	})
}

func PendingReceivables(service financing.Financier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.PendingReceivables(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar contas a receber")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar contas a receber", nil)
			return
		}

		writeJSON(w, entries)
	})
}

func CreateManualEntry(service financing.Financier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ManualEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		entryDate, err := utils.ParseDate(req.EntryDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data do lançamento inválida, use AAAA-MM-DD", nil)
			return
		}
		if entryDate.IsZero() {
			*entryDate = time.Now()
		}

		status := domain.PaymentStatus(req.Status)
		if status == "" {
			status = domain.PaymentPaid
		}

		entry := &domain.FinanceEntry{
			EntryDate:     *entryDate,
			Kind:          domain.EntryKind(req.Kind),
			Description:   req.Description,
			Amount:        req.Amount,
			PaymentMethod: domain.PaymentMethod(req.Method),
			PaymentStatus: status,
		}

		created, err := service.CreateManualEntry(r.Context(), entry)
		if err != nil {
			handleFinanceError(w, err, "Erro ao lançar no livro financeiro")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

// ConfirmReceipt dá baixa em uma parcela pendente, com correção opcional
// do valor efetivamente recebido.
func ConfirmReceipt(service financing.Financier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req ConfirmReceiptRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
				return
			}
		}

		if err := service.ConfirmReceipt(r.Context(), id, req.Amount); err != nil {
			handleFinanceError(w, err, "Erro ao confirmar recebimento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteEntry(service financing.Financier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteEntry(r.Context(), id); err != nil {
			handleFinanceError(w, err, "Erro ao excluir lançamento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func handleFinanceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, financing.ErrEntryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Lançamento não encontrado", nil)

	case errors.Is(err, financing.ErrMonthClosed):
		apiErrors.WriteError(w, apiErrors.ErrMonthClosed, "Mês de referência já está fechado", nil)

	case financing.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, err.Error(), nil)

	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrStoreOperation, fallback, nil)
	}
}
