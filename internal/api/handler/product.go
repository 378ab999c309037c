package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/inventory"
	"github.com/flboutique/boutique-api/internal/usecases/pricing"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

func ListProducts(service inventory.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar o estoque", nil)
			return
		}

		writeJSON(w, products)
	})
}

func GetProduct(service inventory.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.GetProduct(r.Context(), id)
		if err != nil {
			if errors.Is(err, inventory.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Produto não encontrado", map[string]any{"id": id})
				return
			}

			logrus.WithError(err).Error("Erro ao buscar produto")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar o estoque", nil)
			return
		}

		writeJSON(w, product)
	})
}

// RegisterProduct cadastra um modelo e cria uma linha por unidade física.
func RegisterProduct(service inventory.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input inventory.RegisterProductInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		products, err := service.RegisterProduct(r.Context(), input)
		if err != nil {
			handleInventoryError(w, err, "Erro ao cadastrar produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(products)
	})
}

// RestockRequest repõe unidades de um modelo existente.
type RestockRequest struct {
	Quantity int `json:"quantidade"`
}

func RestockProduct(service inventory.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req RestockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		products, err := service.Restock(r.Context(), id, req.Quantity)
		if err != nil {
			handleInventoryError(w, err, "Erro ao repor estoque")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(products)
	})
}

func UpdateProduct(service inventory.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		// O ID da URL prevalece sobre o do corpo
		product.ID = id

		if err := service.UpdateProduct(r.Context(), &product); err != nil {
			handleInventoryError(w, err, "Erro ao atualizar produto")
			return
		}

		writeJSON(w, product)
	})
}

func DeleteProduct(service inventory.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProduct(r.Context(), id); err != nil {
			handleInventoryError(w, err, "Erro ao excluir produto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func GroupedStock(service inventory.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groups, err := service.GroupedStock(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao agrupar estoque")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar o estoque", nil)
			return
		}

		writeJSON(w, groups)
	})
}

// PriceSuggestion calcula o preço de venda sugerido para o custo
// informado em ?preco_custo=.
func PriceSuggestion(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawCost := r.URL.Query().Get("preco_custo")
		if rawCost == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro preco_custo é obrigatório", nil)
			return
		}

		cost, err := strconv.ParseFloat(rawCost, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro preco_custo deve ser numérico", nil)
			return
		}

		suggestion, err := service.Suggest(r.Context(), cost)
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular sugestão de preço")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar parâmetros de precificação", nil)
			return
		}

		writeJSON(w, map[string]float64{
			"preco_custo":    cost,
			"preco_sugerido": suggestion,
		})
	})
}

func handleInventoryError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, inventory.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Produto não encontrado", nil)

	case errors.Is(err, inventory.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do produto é obrigatório", nil)

	case errors.Is(err, inventory.ErrInvalidSize):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tamanho inválido", map[string]any{"tamanhos": domain.Sizes})

	case errors.Is(err, inventory.ErrInvalidQuantity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Quantidade deve ser pelo menos 1", nil)

	case errors.Is(err, inventory.ErrInvalidPrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, "Preço de venda deve ser maior que zero", nil)

	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrStoreOperation, fallback, nil)
	}
}

// writeJSON serializa a resposta com status 200.
func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}
