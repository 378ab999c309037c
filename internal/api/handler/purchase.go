package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/flboutique/boutique-api/internal/usecases/purchasing"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/flboutique/boutique-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// PurchaseRequest é o corpo de POST /v1/purchases. Os vencimentos são
// opcionais; quando presentes deve haver um por parcela.
type PurchaseRequest struct {
	Supplier     string                    `json:"fornecedor"`
	Items        []purchasing.PurchaseItem `json:"itens"`
	Total        float64                   `json:"valor_total"`
	Method       string                    `json:"forma_pagamento"`
	Installments int                       `json:"parcelas"`
	PurchaseDate string                    `json:"data_compra"`
	DueDates     []string                  `json:"vencimentos,omitempty"`
}

func FinalizePurchase(service purchasing.Purchaser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		purchaseDate, err := utils.ParseDate(req.PurchaseDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da compra inválida, use AAAA-MM-DD", nil)
			return
		}
		if purchaseDate.IsZero() {
			*purchaseDate = time.Now()
		}

		dueDates := make([]time.Time, 0, len(req.DueDates))
		for _, raw := range req.DueDates {
			parsed, err := utils.ParseDate(raw)
			if err != nil || parsed.IsZero() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Vencimento inválido, use AAAA-MM-DD", map[string]any{"vencimento": raw})
				return
			}
			dueDates = append(dueDates, *parsed)
		}

		result, err := service.FinalizePurchase(r.Context(), purchasing.PurchaseInput{
			Supplier:     req.Supplier,
			Items:        req.Items,
			Total:        req.Total,
			Method:       domain.PaymentMethod(req.Method),
			Installments: req.Installments,
			PurchaseDate: *purchaseDate,
			DueDates:     dueDates,
		})
		if err != nil {
			handlePurchaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(result)
	})
}

func handlePurchaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, purchasing.ErrMissingSupplier):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Fornecedor é obrigatório", nil)

	case errors.Is(err, purchasing.ErrEmptyOrder):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Compra sem itens", nil)

	case errors.Is(err, purchasing.ErrInvalidQuantity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Quantidade deve ser pelo menos 1", nil)

	case errors.Is(err, purchasing.ErrInvalidSize):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tamanho inválido", map[string]any{"tamanhos": domain.Sizes})

	case errors.Is(err, financing.ErrMonthClosed):
		apiErrors.WriteError(w, apiErrors.ErrMonthClosed, "Mês de referência já está fechado", nil)

	case financing.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro ao finalizar compra")
		apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao registrar a compra", nil)
	}
}
