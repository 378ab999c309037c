package handler

import (
	"errors"
	"net/http"

	"github.com/flboutique/boutique-api/internal/usecases/configuring"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func GetSettings(service configuring.Configurer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.Get(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar configurações")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao consultar configurações", nil)
			return
		}

		writeJSON(w, settings)
	})
}

// SaveSettings grava o conjunto completo de parâmetros: a tela de
// configurações sempre envia todos os valores.
func SaveSettings(service configuring.Configurer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var settings configuring.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.Save(r.Context(), &settings); err != nil {
			if errors.Is(err, configuring.ErrNegativeParameter) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, "Parâmetro de configuração não pode ser negativo", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao salvar configurações")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao salvar configurações", nil)
			return
		}

		writeJSON(w, settings)
	})
}
