package main

import (
	"context"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/infrastructure/store/sheets"
	"github.com/flboutique/boutique-api/internal/api"
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
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dataStore := store.NewCachedStore(openStore(ctx, cfg))

	productRepo := repository.NewProductRepository(dataStore)
	customerRepo := repository.NewCustomerRepository(dataStore)
	financeRepo := repository.NewFinanceRepository(dataStore)
	bagRepo := repository.NewBagRepository(dataStore)
	closureRepo := repository.NewClosureRepository(dataStore)
	settingsRepo := repository.NewSettingsRepository(dataStore)

	authenticator := authenticating.NewService(cfg)
	financier := financing.NewService(financeRepo, closureRepo)

	reminderService := scheduler.NewReminderService(financeRepo, bagRepo, cfg)
	if err := reminderService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de lembretes")
	} else {
		logrus.Info("Agendador de lembretes iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Inventory:     inventory.NewService(productRepo),
		Pricer:        pricing.NewService(settingsRepo),
		Customers:     customer.NewService(customerRepo),
		Seller:        selling.NewService(productRepo, financier),
		Purchaser:     purchasing.NewService(productRepo, financier),
		Consigner:     consignment.NewService(bagRepo, productRepo, customerRepo, financier),
		Financier:     financier,
		Closer:        closing.NewService(closureRepo),
		Configurer:    configuring.NewService(settingsRepo),
		Reporter:      reporting.NewService(productRepo, financeRepo, settingsRepo),
		Reminder:      reminderService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// openStore conecta na planilha. Sem SHEETS_SPREADSHEET_ID a API sobe com
// um armazenamento em memória, suficiente para desenvolver o front local.
func openStore(ctx context.Context, cfg *config.Config) store.Store {
	if cfg.Sheets.SpreadsheetID == "" {
		logrus.Warn("SHEETS_SPREADSHEET_ID vazio, usando armazenamento em memória")
		memory := store.NewInMemoryStore()
		for collection, header := range repository.CollectionHeaders() {
			memory.CreateCollection(collection, header)
		}
		return memory
	}

	sheetStore, err := sheets.NewStore(ctx, cfg.Sheets)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Google Sheets")
	}

	if err := sheetStore.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o Google Sheets")
	}

	if err := sheetStore.EnsureCollections(ctx, repository.CollectionHeaders()); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar as abas da planilha")
	}

	logrus.Info("Conexão com o Google Sheets estabelecida com sucesso")
	return sheetStore
}
