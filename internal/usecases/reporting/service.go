package reporting

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/money"
	"github.com/flboutique/boutique-api/pkg/utils"
)

type Reporter interface {
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
	TopCustomers(ctx context.Context, limit int) ([]*domain.CustomerRevenue, error)
	SizeCurve(ctx context.Context) ([]*domain.SizeCount, error)
}

type Service struct {
	productRepo  repository.ProductRepository
	financeRepo  repository.FinanceRepository
	settingsRepo repository.SettingsRepository
	now          func() time.Time
}

func NewService(
	productRepo repository.ProductRepository,
	financeRepo repository.FinanceRepository,
	settingsRepo repository.SettingsRepository,
) Reporter {
	return &Service{
		productRepo:  productRepo,
		financeRepo:  financeRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// Dashboard consolida o livro e o estoque em uma única visão.
// Caixa líquido = receita paga - despesa paga - taxas de cartão; as taxas
// incidem só sobre as vendas pagas no crédito/débito.
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	entries, err := s.financeRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	params, err := s.settingsRepo.GetParameters(ctx)
	if err != nil {
		return nil, err
	}

	cardFeePercent := domain.DefaultCardFee
	if value, ok := params[domain.ParamCardFee]; ok {
		cardFeePercent = value
	}

	summary := &domain.DashboardSummary{}
	currentMonth := utils.MonthKey(s.now())
	monthSales := make(map[string]bool)

	for _, entry := range entries {
		paid := entry.PaymentStatus == domain.PaymentPaid

		switch entry.Kind {
		case domain.EntrySale, domain.EntryCapital:
			if paid {
				summary.GrossCash += entry.Amount
				if entry.Kind == domain.EntrySale && isCardMethod(entry.PaymentMethod) {
					summary.CardFees += entry.Amount * cardFeePercent / 100
				}
			} else if entry.Kind == domain.EntrySale {
				summary.Receivables += entry.Amount
			}
		case domain.EntryExpense:
			if paid {
				summary.GrossCash -= entry.Amount
			}
		}

		if entry.Kind == domain.EntrySale && utils.MonthKey(entry.EntryDate) == currentMonth {
			summary.MonthSalesAmount += entry.Amount
			// Parcelas da mesma venda compartilham a descrição sem o
			// sufixo (i/n); cada venda conta uma vez
			monthSales[saleKey(entry.Description)] = true
		}
	}

	summary.MonthSalesCount = len(monthSales)

	for _, product := range products {
		if product.Status == domain.ProductAvailable || product.Status == domain.ProductInBag {
			summary.StockCost += product.CostPrice
		}
		if product.Status == domain.ProductAvailable {
			summary.AvailableUnits++
		}
	}

	summary.NetCash = money.Round(summary.GrossCash - summary.CardFees)
	summary.GrossCash = money.Round(summary.GrossCash)
	summary.CardFees = money.Round(summary.CardFees)
	summary.Receivables = money.Round(summary.Receivables)
	summary.StockCost = money.Round(summary.StockCost)
	summary.MonthSalesAmount = money.Round(summary.MonthSalesAmount)

	if summary.MonthSalesCount > 0 {
		summary.AverageTicket = money.Round(summary.MonthSalesAmount / float64(summary.MonthSalesCount))
	}

	return summary, nil
}

// TopCustomers ranqueia clientes pelo total vendido, extraindo a
// contraparte das descrições do livro.
func (s *Service) TopCustomers(ctx context.Context, limit int) ([]*domain.CustomerRevenue, error) {
	entries, err := s.financeRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	totalByCustomer := make(map[string]float64)
	for _, entry := range entries {
		if entry.Kind != domain.EntrySale {
			continue
		}
		name := extractCounterparty(entry.Description)
		if name == "" {
			continue
		}
		totalByCustomer[name] += entry.Amount
	}

	ranking := make([]*domain.CustomerRevenue, 0, len(totalByCustomer))
	for name, total := range totalByCustomer {
		ranking = append(ranking, &domain.CustomerRevenue{
			CustomerName: name,
			Total:        money.Round(total),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Total != ranking[j].Total {
			return ranking[i].Total > ranking[j].Total
		}
		return ranking[i].CustomerName < ranking[j].CustomerName
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}

	return ranking, nil
}

// SizeCurve conta as unidades vendidas por tamanho, na ordem dos
// tamanhos de cadastro.
func (s *Service) SizeCurve(ctx context.Context) ([]*domain.SizeCount, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	countBySize := make(map[string]int)
	for _, product := range products {
		if product.Status == domain.ProductSold {
			countBySize[product.Size]++
		}
	}

	var curve []*domain.SizeCount
	for _, size := range domain.Sizes {
		if count, ok := countBySize[size]; ok {
			curve = append(curve, &domain.SizeCount{Size: size, Count: count})
		}
	}

	return curve, nil
}

func isCardMethod(method domain.PaymentMethod) bool {
	return method == domain.PaymentCredit || method == domain.PaymentDebit
}

// saleKey remove o sufixo de parcela "(i/n)" da descrição.
func saleKey(description string) string {
	if idx := strings.LastIndex(description, " ("); idx > 0 && strings.HasSuffix(description, ")") {
		return description[:idx]
	}
	return description
}

// extractCounterparty lê o nome entre o prefixo de origem e o sufixo de
// parcela: "Venda Direta - Maria (1/2)" -> "Maria".
func extractCounterparty(description string) string {
	name := saleKey(description)
	if idx := strings.Index(name, " - "); idx >= 0 {
		name = name[idx+3:]
	}
	return strings.TrimSpace(name)
}
