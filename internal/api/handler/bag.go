package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/consignment"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/flboutique/boutique-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// DispatchRequest monta uma mala para envio.
type DispatchRequest struct {
	CustomerID     string   `json:"cliente_id"`
	ProductIDs     []string `json:"ids_produtos"`
	ShipDate       string   `json:"data_envio"`
	ExpectedReturn string   `json:"data_prevista_retorno"`
}

// SettleRequest fecha o acerto: cada peça enviada precisa estar em
// ids_vendidas ou ids_devolvidas.
type SettleRequest struct {
	SoldIDs      []string `json:"ids_vendidas"`
	ReturnedIDs  []string `json:"ids_devolvidas"`
	Method       string   `json:"forma_pagamento"`
	Installments int      `json:"parcelas"`
	SettleDate   string   `json:"data_acerto"`
	Total        *float64 `json:"valor_total,omitempty"`
}

func ListBags(service consignment.Consigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bags, err := service.ListBags(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar malas")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar malas", nil)
			return
		}

		writeJSON(w, bags)
	})
}

func GetBag(service consignment.Consigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		bag, err := service.GetBag(r.Context(), id)
		if err != nil {
			handleBagError(w, err, "Erro ao buscar mala")
			return
		}

		writeJSON(w, bag)
	})
}

func DispatchBag(service consignment.Consigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req DispatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		shipDate, err := utils.ParseDate(req.ShipDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de envio inválida, use AAAA-MM-DD", nil)
			return
		}
		if shipDate.IsZero() {
			*shipDate = time.Now()
		}

		expectedReturn, err := utils.ParseDate(req.ExpectedReturn)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data prevista de retorno inválida, use AAAA-MM-DD", nil)
			return
		}

		bag, err := service.Dispatch(r.Context(), consignment.DispatchInput{
			CustomerID:     req.CustomerID,
			ProductIDs:     req.ProductIDs,
			ShipDate:       *shipDate,
			ExpectedReturn: *expectedReturn,
		})
		if err != nil {
			handleBagError(w, err, "Erro ao enviar mala")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(bag)
	})
}

func SettleBag(service consignment.Consigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req SettleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		settleDate, err := utils.ParseDate(req.SettleDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data do acerto inválida, use AAAA-MM-DD", nil)
			return
		}
		if settleDate.IsZero() {
			*settleDate = time.Now()
		}

		result, err := service.Settle(r.Context(), consignment.SettleInput{
			BagID:        id,
			SoldIDs:      req.SoldIDs,
			ReturnedIDs:  req.ReturnedIDs,
			Method:       domain.PaymentMethod(req.Method),
			Installments: req.Installments,
			SettleDate:   *settleDate,
			Total:        req.Total,
		})
		if err != nil {
			handleBagError(w, err, "Erro ao acertar mala")
			return
		}

		writeJSON(w, result)
	})
}

func CancelBag(service consignment.Consigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Cancel(r.Context(), id); err != nil {
			handleBagError(w, err, "Erro ao cancelar mala")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func handleBagError(w http.ResponseWriter, err error, fallback string) {
	var decisionErr *consignment.DecisionError
	if errors.As(err, &decisionErr) {
		apiErrors.WriteError(w, codeForDecision(decisionErr), decisionErr.Error(), map[string]any{
			"ids": decisionErr.IDs,
		})
		return
	}

	switch {
	case errors.Is(err, consignment.ErrBagNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Mala não encontrada", nil)

	case errors.Is(err, consignment.ErrCustomerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Cliente não encontrada", nil)

	case errors.Is(err, consignment.ErrEmptyBag):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Mala sem peças", nil)

	case errors.Is(err, consignment.ErrBagNotOpen):
		apiErrors.WriteError(w, apiErrors.ErrBagNotOpen, "Mala não está aberta", nil)

	case errors.Is(err, consignment.ErrUnitNotAvailable):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientStock, "Peça não está disponível", nil)

	case errors.Is(err, consignment.ErrMissingDecision):
		apiErrors.WriteError(w, apiErrors.ErrMissingDecision, "Peça da mala sem decisão de acerto", nil)

	case errors.Is(err, consignment.ErrDecisionOutsideBag):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Decisão para peça que não está na mala", nil)

	case errors.Is(err, financing.ErrMonthClosed):
		apiErrors.WriteError(w, apiErrors.ErrMonthClosed, "Mês de referência já está fechado", nil)

	case financing.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, err.Error(), nil)

	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrStoreOperation, fallback, nil)
	}
}

func codeForDecision(err *consignment.DecisionError) string {
	switch {
	case errors.Is(err, consignment.ErrUnitNotAvailable):
		return apiErrors.ErrInsufficientStock
	case errors.Is(err, consignment.ErrMissingDecision):
		return apiErrors.ErrMissingDecision
	default:
		return apiErrors.ErrInvalidRequest
	}
}
