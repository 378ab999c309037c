package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flboutique/boutique-api/internal/api/handler"
	"github.com/flboutique/boutique-api/internal/api/handler/router"
	"github.com/flboutique/boutique-api/internal/config"
	"github.com/flboutique/boutique-api/internal/scheduler"
	"github.com/flboutique/boutique-api/internal/usecases/authenticating"
	"github.com/flboutique/boutique-api/internal/usecases/closing"
	"github.com/flboutique/boutique-api/internal/usecases/configuring"
	"github.com/flboutique/boutique-api/internal/usecases/consignment"
	"github.com/flboutique/boutique-api/internal/usecases/customer"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/flboutique/boutique-api/internal/usecases/inventory"
	"github.com/flboutique/boutique-api/internal/usecases/pricing"
	"github.com/flboutique/boutique-api/internal/usecases/purchasing"
	"github.com/flboutique/boutique-api/internal/usecases/reporting"
	"github.com/flboutique/boutique-api/internal/usecases/selling"
	"github.com/flboutique/boutique-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa tudo que a API expõe. Evita um construtor com uma
// dúzia de parâmetros posicionais.
type Services struct {
	Authenticator authenticating.Authenticator
	Inventory     inventory.Inventorier
	Pricer        pricing.Pricer
	Customers     customer.Manager
	Seller        selling.Seller
	Purchaser     purchasing.Purchaser
	Consigner     consignment.Consigner
	Financier     financing.Financier
	Closer        closing.Closer
	Configurer    configuring.Configurer
	Reporter      reporting.Reporter
	Reminder      *scheduler.ReminderService
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Products(services.Inventory, services.Pricer)...),
		router.WithRoutes(handler.Customers(services.Customers)...),
		router.WithRoutes(handler.Sales(services.Seller)...),
		router.WithRoutes(handler.Purchases(services.Purchaser)...),
		router.WithRoutes(handler.Bags(services.Consigner)...),
		router.WithRoutes(handler.Finance(services.Financier)...),
		router.WithRoutes(handler.Closures(services.Closer)...),
		router.WithRoutes(handler.Settings(services.Configurer)...),
		router.WithRoutes(handler.Dashboard(services.Reporter)...),
		router.WithRoutes(handler.CronJobs(services.Reminder)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
