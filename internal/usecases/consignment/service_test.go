package consignment

import (
	"context"
	"testing"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository/mocks"
	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/internal/usecases/financing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bagFixture struct {
	bagRepo      *mocks.MockBagRepository
	productRepo  *mocks.MockProductRepository
	customerRepo *mocks.MockCustomerRepository
	financeRepo  *mocks.MockFinanceRepository
	closureRepo  *mocks.MockClosureRepository
	service      Consigner
}

func newBagFixture(t *testing.T) *bagFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &bagFixture{
		bagRepo:      mocks.NewMockBagRepository(ctrl),
		productRepo:  mocks.NewMockProductRepository(ctrl),
		customerRepo: mocks.NewMockCustomerRepository(ctrl),
		financeRepo:  mocks.NewMockFinanceRepository(ctrl),
		closureRepo:  mocks.NewMockClosureRepository(ctrl),
	}
	f.service = NewService(f.bagRepo, f.productRepo, f.customerRepo,
		financing.NewService(f.financeRepo, f.closureRepo))
	return f
}

func openBag(ids ...string) *domain.Bag {
	return &domain.Bag{
		ID:             "mala1",
		CustomerID:     "c1",
		CustomerName:   "Fernanda",
		ShipDate:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		ProductIDs:     ids,
		Status:         domain.BagOpen,
		ExpectedReturn: time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestDispatchOpensBagAndMarksUnits(t *testing.T) {
	f := newBagFixture(t)

	f.customerRepo.EXPECT().
		GetCustomer(gomock.Any(), "c1").
		Return(&domain.Customer{ID: "c1", Name: "Fernanda"}, nil)

	f.productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*domain.Product{
			{ID: "p1", Status: domain.ProductAvailable},
			{ID: "p2", Status: domain.ProductAvailable},
		}, nil)

	var created *domain.Bag
	f.bagRepo.EXPECT().
		CreateBag(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bag *domain.Bag) error {
			created = bag
			return nil
		})

	f.productRepo.EXPECT().
		UpdateStatusBatch(gomock.Any(), map[string]domain.ProductStatus{
			"p1": domain.ProductInBag,
			"p2": domain.ProductInBag,
		}).
		Return(&store.BatchResult{Updated: []string{"p1", "p2"}}, nil)

	bag, err := f.service.Dispatch(context.Background(), DispatchInput{
		CustomerID:     "c1",
		ProductIDs:     []string{"p1", "p2"},
		ShipDate:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		ExpectedReturn: time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BagOpen, bag.Status)
	assert.Equal(t, "Fernanda", bag.CustomerName)
	assert.NotEmpty(t, bag.ID)
	assert.Equal(t, bag, created)
}

func TestDispatchRejectsUnavailableUnit(t *testing.T) {
	f := newBagFixture(t)

	f.customerRepo.EXPECT().
		GetCustomer(gomock.Any(), "c1").
		Return(&domain.Customer{ID: "c1", Name: "Fernanda"}, nil)

	f.productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*domain.Product{
			{ID: "p1", Status: domain.ProductAvailable},
			{ID: "p2", Status: domain.ProductSold},
		}, nil)

	_, err := f.service.Dispatch(context.Background(), DispatchInput{
		CustomerID: "c1",
		ProductIDs: []string{"p1", "p2", "p3"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnitNotAvailable)

	var decisionErr *DecisionError
	require.ErrorAs(t, err, &decisionErr)
	assert.ElementsMatch(t, []string{"p2", "p3"}, decisionErr.IDs)
}

func TestSettleSplitsReturnedAndSold(t *testing.T) {
	f := newBagFixture(t)

	f.bagRepo.EXPECT().
		GetBag(gomock.Any(), "mala1").
		Return(openBag("p1", "p2"), nil)

	// p2 comprada por 80.00: o total do acerto vem do preço de venda
	f.productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*domain.Product{
			{ID: "p1", SalePrice: 120, Status: domain.ProductInBag},
			{ID: "p2", SalePrice: 80, Status: domain.ProductInBag},
		}, nil)

	f.closureRepo.EXPECT().
		ListClosures(gomock.Any()).
		Return(nil, nil)

	var appended []*domain.FinanceEntry
	f.financeRepo.EXPECT().
		AppendEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []*domain.FinanceEntry) error {
			appended = entries
			return nil
		})

	f.productRepo.EXPECT().
		UpdateStatusBatch(gomock.Any(), map[string]domain.ProductStatus{
			"p1": domain.ProductAvailable,
			"p2": domain.ProductSold,
		}).
		Return(&store.BatchResult{Updated: []string{"p1", "p2"}}, nil)

	f.bagRepo.EXPECT().
		UpdateBagStatus(gomock.Any(), "mala1", domain.BagFinalized).
		Return(nil)

	result, err := f.service.Settle(context.Background(), SettleInput{
		BagID:        "mala1",
		SoldIDs:      []string{"p2"},
		ReturnedIDs:  []string{"p1"},
		Method:       domain.PaymentPix,
		Installments: 1,
		SettleDate:   time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BagFinalized, result.Bag.Status)
	require.Len(t, appended, 1)
	assert.InDelta(t, 80.00, appended[0].Amount, 0.001)
	assert.Equal(t, "Mala - Fernanda (1/1)", appended[0].Description)
	assert.Equal(t, domain.EntrySale, appended[0].Kind)
}

func TestSettleAllReturnedSkipsLedger(t *testing.T) {
	f := newBagFixture(t)

	f.bagRepo.EXPECT().
		GetBag(gomock.Any(), "mala1").
		Return(openBag("p1", "p2"), nil)

	f.productRepo.EXPECT().
		UpdateStatusBatch(gomock.Any(), map[string]domain.ProductStatus{
			"p1": domain.ProductAvailable,
			"p2": domain.ProductAvailable,
		}).
		Return(&store.BatchResult{Updated: []string{"p1", "p2"}}, nil)

	f.bagRepo.EXPECT().
		UpdateBagStatus(gomock.Any(), "mala1", domain.BagFinalized).
		Return(nil)

	result, err := f.service.Settle(context.Background(), SettleInput{
		BagID:       "mala1",
		ReturnedIDs: []string{"p1", "p2"},
		SettleDate:  time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}

func TestSettleRequiresDecisionForEveryUnit(t *testing.T) {
	f := newBagFixture(t)

	f.bagRepo.EXPECT().
		GetBag(gomock.Any(), "mala1").
		Return(openBag("p1", "p2", "p3"), nil)

	_, err := f.service.Settle(context.Background(), SettleInput{
		BagID:       "mala1",
		SoldIDs:     []string{"p1"},
		ReturnedIDs: []string{"p2"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDecision)

	var decisionErr *DecisionError
	require.ErrorAs(t, err, &decisionErr)
	assert.Equal(t, []string{"p3"}, decisionErr.IDs)
}

func TestSettleRejectsDecisionOutsideBag(t *testing.T) {
	f := newBagFixture(t)

	f.bagRepo.EXPECT().
		GetBag(gomock.Any(), "mala1").
		Return(openBag("p1"), nil)

	_, err := f.service.Settle(context.Background(), SettleInput{
		BagID:       "mala1",
		SoldIDs:     []string{"p1", "intrusa"},
		ReturnedIDs: nil,
	})
	assert.ErrorIs(t, err, ErrDecisionOutsideBag)
}

func TestSettleRejectsFinalizedBag(t *testing.T) {
	f := newBagFixture(t)

	bag := openBag("p1")
	bag.Status = domain.BagFinalized

	f.bagRepo.EXPECT().
		GetBag(gomock.Any(), "mala1").
		Return(bag, nil)

	_, err := f.service.Settle(context.Background(), SettleInput{
		BagID:       "mala1",
		ReturnedIDs: []string{"p1"},
	})
	assert.ErrorIs(t, err, ErrBagNotOpen)
}

func TestCancelRestoresUnitsAndDeletesBag(t *testing.T) {
	f := newBagFixture(t)

	f.bagRepo.EXPECT().
		GetBag(gomock.Any(), "mala1").
		Return(openBag("p1", "p2"), nil)

	f.productRepo.EXPECT().
		UpdateStatusBatch(gomock.Any(), map[string]domain.ProductStatus{
			"p1": domain.ProductAvailable,
			"p2": domain.ProductAvailable,
		}).
		Return(&store.BatchResult{Updated: []string{"p1", "p2"}}, nil)

	f.bagRepo.EXPECT().
		DeleteBag(gomock.Any(), "mala1").
		Return(nil)

	err := f.service.Cancel(context.Background(), "mala1")
	assert.NoError(t, err)
}

func TestCancelBagNotFound(t *testing.T) {
	f := newBagFixture(t)

	f.bagRepo.EXPECT().
		GetBag(gomock.Any(), "sumida").
		Return(nil, store.ErrRecordNotFound)

	err := f.service.Cancel(context.Background(), "sumida")
	assert.ErrorIs(t, err, ErrBagNotFound)
}

func TestSettleZeroPriceUnitFinalizesWithoutLedger(t *testing.T) {
	f := newBagFixture(t)

	f.bagRepo.EXPECT().
		GetBag(gomock.Any(), "mala1").
		Return(openBag("p1"), nil)

	// Peça com preço de venda zerado: a mala finaliza sem lançamento
	f.productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*domain.Product{
			{ID: "p1", SalePrice: 0, Status: domain.ProductInBag},
		}, nil)

	f.productRepo.EXPECT().
		UpdateStatusBatch(gomock.Any(), map[string]domain.ProductStatus{
			"p1": domain.ProductSold,
		}).
		Return(&store.BatchResult{Updated: []string{"p1"}}, nil)

	f.bagRepo.EXPECT().
		UpdateBagStatus(gomock.Any(), "mala1", domain.BagFinalized).
		Return(nil)

	result, err := f.service.Settle(context.Background(), SettleInput{
		BagID:      "mala1",
		SoldIDs:    []string{"p1"},
		Method:     domain.PaymentCash,
		SettleDate: time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BagFinalized, result.Bag.Status)
	assert.Empty(t, result.Entries)
}

func TestSettleZeroNegotiatedTotalSkipsLedger(t *testing.T) {
	f := newBagFixture(t)

	f.bagRepo.EXPECT().
		GetBag(gomock.Any(), "mala1").
		Return(openBag("p1"), nil)

	f.productRepo.EXPECT().
		UpdateStatusBatch(gomock.Any(), map[string]domain.ProductStatus{
			"p1": domain.ProductSold,
		}).
		Return(&store.BatchResult{Updated: []string{"p1"}}, nil)

	f.bagRepo.EXPECT().
		UpdateBagStatus(gomock.Any(), "mala1", domain.BagFinalized).
		Return(nil)

	negotiated := 0.0
	result, err := f.service.Settle(context.Background(), SettleInput{
		BagID:      "mala1",
		SoldIDs:    []string{"p1"},
		Total:      &negotiated,
		SettleDate: time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}
