package repository

import (
	"context"
	"strings"

	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	bagStatusColumn = 6
	bagColumnCount  = 7

	// Separador da lista de ids de produtos na célula lista_ids_produtos.
	bagProductSeparator = ","
)

type BagRepository interface {
	ListBags(ctx context.Context) ([]*domain.Bag, error)
	GetBag(ctx context.Context, id string) (*domain.Bag, error)
	CreateBag(ctx context.Context, bag *domain.Bag) error
	UpdateBagStatus(ctx context.Context, id string, status domain.BagStatus) error
	DeleteBag(ctx context.Context, id string) error
}

type bagRepository struct {
	store store.Store
}

func NewBagRepository(st store.Store) BagRepository {
	return &bagRepository{store: st}
}

func (r *bagRepository) ListBags(ctx context.Context) ([]*domain.Bag, error) {
	table, err := r.store.LoadAll(ctx, bagsCollection)
	if err != nil {
		return nil, err
	}

	var bags []*domain.Bag
	quarantined := 0

	for _, row := range table.Rows {
		bag, ok := parseBagRow(row)
		if !ok {
			quarantined++
			continue
		}
		bags = append(bags, bag)
	}

	if quarantined > 0 {
		logrus.Warnf("Coleção %s: %d linha(s) malformada(s) ignorada(s)", bagsCollection, quarantined)
	}

	return bags, nil
}

func (r *bagRepository) GetBag(ctx context.Context, id string) (*domain.Bag, error) {
	bags, err := r.ListBags(ctx)
	if err != nil {
		return nil, err
	}

	for _, bag := range bags {
		if bag.ID == id {
			return bag, nil
		}
	}

	return nil, store.ErrRecordNotFound
}

func (r *bagRepository) CreateBag(ctx context.Context, bag *domain.Bag) error {
	return r.store.Append(ctx, bagsCollection, bagToRow(bag))
}

func (r *bagRepository) UpdateBagStatus(ctx context.Context, id string, status domain.BagStatus) error {
	updates := []store.CellUpdate{
		{ID: id, Column: bagStatusColumn, Value: string(status)},
	}

	result, err := r.store.UpdateCellsBatch(ctx, bagsCollection, updates)
	if err != nil {
		return err
	}

	if len(result.Missing) > 0 {
		return store.ErrRecordNotFound
	}

	return nil
}

func (r *bagRepository) DeleteBag(ctx context.Context, id string) error {
	handle, err := r.store.FindRowByID(ctx, bagsCollection, id)
	if err != nil {
		return err
	}

	return r.store.DeleteRow(ctx, handle)
}

func parseBagRow(row []string) (*domain.Bag, bool) {
	if len(row) < bagColumnCount || row[0] == "" {
		return nil, false
	}

	shipDate, err := utils.ParseDate(row[3])
	if err != nil {
		return nil, false
	}

	expectedReturn, err := utils.ParseDate(row[6])
	if err != nil {
		return nil, false
	}

	var productIDs []string
	for _, id := range strings.Split(row[4], bagProductSeparator) {
		id = strings.TrimSpace(id)
		if id != "" {
			productIDs = append(productIDs, id)
		}
	}

	return &domain.Bag{
		ID:             row[0],
		CustomerID:     row[1],
		CustomerName:   row[2],
		ShipDate:       *shipDate,
		ProductIDs:     productIDs,
		Status:         domain.BagStatus(row[5]),
		ExpectedReturn: *expectedReturn,
	}, true
}

func bagToRow(bag *domain.Bag) []string {
	return []string{
		bag.ID,
		bag.CustomerID,
		bag.CustomerName,
		utils.FormatDate(bag.ShipDate),
		strings.Join(bag.ProductIDs, bagProductSeparator),
		string(bag.Status),
		utils.FormatDate(bag.ExpectedReturn),
	}
}
