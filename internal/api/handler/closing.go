package handler

import (
	"errors"
	"net/http"

	"github.com/flboutique/boutique-api/internal/usecases/closing"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

func ListMonths(service closing.Closer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		months, err := service.Months(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar meses contábeis")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar fechamentos", nil)
			return
		}

		writeJSON(w, months)
	})
}

func CloseMonth(service closing.Closer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		monthKey := httprouter.ParamsFromContext(r.Context()).ByName("month")

		if err := service.Close(r.Context(), monthKey); err != nil {
			handleClosingError(w, err, "Erro ao fechar o mês")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ReopenMonth(service closing.Closer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		monthKey := httprouter.ParamsFromContext(r.Context()).ByName("month")

		if err := service.Reopen(r.Context(), monthKey); err != nil {
			handleClosingError(w, err, "Erro ao reabrir o mês")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func handleClosingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, closing.ErrFutureMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não é possível fechar um mês futuro", nil)

	case errors.Is(err, closing.ErrInvalidMonthKey):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use AAAA-MM", nil)

	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrStoreOperation, fallback, nil)
	}
}
