package handler

import (
	"net/http"

	"github.com/flboutique/boutique-api/internal/scheduler"
	"github.com/flboutique/boutique-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RunReminder dispara manualmente a checagem diária de pendências.
func RunReminder(reminder *scheduler.ReminderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reminder == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de lembretes não disponível", nil)
			return
		}

		logrus.Info("Checagem de pendências disparada manualmente")
		reminder.RunNow(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "executado",
		})
	})
}
