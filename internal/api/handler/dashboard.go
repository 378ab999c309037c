package handler

import (
	"net/http"
	"strconv"

	"github.com/flboutique/boutique-api/internal/usecases/reporting"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Ranking de clientes quando o front não pede um tamanho específico.
const defaultTopCustomersLimit = 10

func DashboardSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Dashboard(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar o dashboard")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao montar o dashboard", nil)
			return
		}

		writeJSON(w, summary)
	})
}

func TopCustomers(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := defaultTopCustomersLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		ranking, err := service.TopCustomers(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar ranking de clientes")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao montar ranking de clientes", nil)
			return
		}

		writeJSON(w, ranking)
	})
}

func SizeCurve(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		curve, err := service.SizeCurve(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar curva de tamanhos")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao montar curva de tamanhos", nil)
			return
		}

		writeJSON(w, curve)
	})
}
