package handler

import (
	"errors"
	"net/http"

	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/customer"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

func ListCustomers(service customer.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar clientes")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar clientes", nil)
			return
		}

		writeJSON(w, customers)
	})
}

func GetCustomer(service customer.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.GetCustomer(r.Context(), id)
		if err != nil {
			handleCustomerError(w, err, "Erro ao buscar cliente")
			return
		}

		writeJSON(w, found)
	})
}

func CreateCustomer(service customer.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body domain.Customer
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateCustomer(r.Context(), &body)
		if err != nil {
			handleCustomerError(w, err, "Erro ao cadastrar cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

func UpdateCustomer(service customer.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body domain.Customer
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		body.ID = id

		if err := service.UpdateCustomer(r.Context(), &body); err != nil {
			handleCustomerError(w, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, body)
	})
}

func DeleteCustomer(service customer.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCustomer(r.Context(), id); err != nil {
			handleCustomerError(w, err, "Erro ao excluir cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func handleCustomerError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Cliente não encontrada", nil)

	case errors.Is(err, customer.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da cliente é obrigatório", nil)

	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrStoreOperation, fallback, nil)
	}
}
