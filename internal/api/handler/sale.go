package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/flboutique/boutique-api/internal/usecases/selling"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/flboutique/boutique-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// SaleRequest é o corpo de POST /v1/sales. Datas chegam como "2026-08-31".
type SaleRequest struct {
	CustomerName string             `json:"nome_cliente"`
	Items        []selling.SaleItem `json:"itens"`
	Total        float64            `json:"valor_total"`
	Method       string             `json:"forma_pagamento"`
	Installments int                `json:"parcelas"`
	SaleDate     string             `json:"data_venda"`
}

func FinalizeSale(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		saleDate, err := utils.ParseDate(req.SaleDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da venda inválida, use AAAA-MM-DD", nil)
			return
		}
		if saleDate.IsZero() {
			*saleDate = time.Now()
		}

		result, err := service.FinalizeSale(r.Context(), selling.SaleInput{
			CustomerName: req.CustomerName,
			Items:        req.Items,
			Total:        req.Total,
			Method:       domain.PaymentMethod(req.Method),
			Installments: req.Installments,
			SaleDate:     *saleDate,
		})
		if err != nil {
			handleSaleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(result)
	})
}

func handleSaleError(w http.ResponseWriter, err error) {
	var stockErr *selling.StockError
	if errors.As(err, &stockErr) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientStock, stockErr.Error(), map[string]any{
			"nome":        stockErr.Name,
			"tamanho":     stockErr.Size,
			"solicitadas": stockErr.Requested,
			"disponiveis": stockErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, selling.ErrEmptyCart):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Venda sem itens", nil)

	case errors.Is(err, selling.ErrInvalidQuantity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Quantidade deve ser pelo menos 1", nil)

	case errors.Is(err, selling.ErrInsufficientStock):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientStock, "Estoque disponível insuficiente", nil)

	case errors.Is(err, financing.ErrMonthClosed):
		apiErrors.WriteError(w, apiErrors.ErrMonthClosed, "Mês de referência já está fechado", nil)

	case financing.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro ao finalizar venda")
		apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao registrar a venda", nil)
	}
}
