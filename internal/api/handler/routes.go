package handler

import (
	"net/http"

	"github.com/flboutique/boutique-api/internal/api/handler/router"
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
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// Products cobre o CRUD de peças, a visão agrupada do estoque e a
// sugestão de preço.
func Products(service inventory.Inventorier, pricer pricing.Pricer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: RegisterProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
		{
			Path:    "/v1/products/:id/restock",
			Method:  http.MethodPost,
			Handler: RestockProduct(service),
		},
		{
			Path:    "/v1/stock",
			Method:  http.MethodGet,
			Handler: GroupedStock(service),
		},
		{
			Path:    "/v1/pricing/suggestion",
			Method:  http.MethodGet,
			Handler: PriceSuggestion(pricer),
		},
	}
}

func Customers(service customer.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
		{
			Path:    "/v1/customers",
			Method:  http.MethodPost,
			Handler: CreateCustomer(service),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodGet,
			Handler: GetCustomer(service),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodPut,
			Handler: UpdateCustomer(service),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCustomer(service),
		},
	}
}

func Sales(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: FinalizeSale(service),
		},
	}
}

func Purchases(service purchasing.Purchaser) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/purchases",
			Method:  http.MethodPost,
			Handler: FinalizePurchase(service),
		},
	}
}

// Bags cobre o ciclo de vida da mala: envio, acerto e cancelamento.
func Bags(service consignment.Consigner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/bags",
			Method:  http.MethodGet,
			Handler: ListBags(service),
		},
		{
			Path:    "/v1/bags",
			Method:  http.MethodPost,
			Handler: DispatchBag(service),
		},
		{
			Path:    "/v1/bags/:id",
			Method:  http.MethodGet,
			Handler: GetBag(service),
		},
		{
			Path:    "/v1/bags/:id/settle",
			Method:  http.MethodPost,
			Handler: SettleBag(service),
		},
		{
			Path:    "/v1/bags/:id",
			Method:  http.MethodDelete,
			Handler: CancelBag(service),
		},
	}
}

func Finance(service financing.Financier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/finance/entries",
			Method:  http.MethodGet,
			Handler: Statement(service),
		},
		{
			Path:    "/v1/finance/entries",
			Method:  http.MethodPost,
			Handler: CreateManualEntry(service),
		},
		{
			Path:    "/v1/finance/entries/:id",
			Method:  http.MethodDelete,
			Handler: DeleteEntry(service),
		},
		{
			Path:    "/v1/finance/entries/:id/confirm",
			Method:  http.MethodPost,
			Handler: ConfirmReceipt(service),
		},
		{
			Path:    "/v1/finance/receivables",
			Method:  http.MethodGet,
			Handler: PendingReceivables(service),
		},
	}
}

func Closures(service closing.Closer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/closures",
			Method:  http.MethodGet,
			Handler: ListMonths(service),
		},
		{
			Path:    "/v1/closures/:month/close",
			Method:  http.MethodPost,
			Handler: CloseMonth(service),
		},
		{
			Path:    "/v1/closures/:month/reopen",
			Method:  http.MethodPost,
			Handler: ReopenMonth(service),
		},
	}
}

func Settings(service configuring.Configurer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetSettings(service),
		},
		{
			Path:    "/v1/settings",
			Method:  http.MethodPut,
			Handler: SaveSettings(service),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: DashboardSummary(service),
		},
		{
			Path:    "/v1/dashboard/top-customers",
			Method:  http.MethodGet,
			Handler: TopCustomers(service),
		},
		{
			Path:    "/v1/dashboard/size-curve",
			Method:  http.MethodGet,
			Handler: SizeCurve(service),
		},
	}
}

func CronJobs(reminder *scheduler.ReminderService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/reminder",
			Method:  http.MethodPost,
			Handler: RunReminder(reminder),
		},
	}
}
