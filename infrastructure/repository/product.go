package repository

import (
	"context"
	"sort"

	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/money"
	"github.com/sirupsen/logrus"
)

// Posições das colunas na coleção Produtos (1-based).
const (
	productNameColumn   = 2
	productSizeColumn   = 3
	productCostColumn   = 4
	productSaleColumn   = 5
	productStatusColumn = 6
	productColumnCount  = 6
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProducts(ctx context.Context, products []*domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	UpdateStatusBatch(ctx context.Context, statusByID map[string]domain.ProductStatus) (*store.BatchResult, error)
}

type productRepository struct {
	store store.Store
}

func NewProductRepository(st store.Store) ProductRepository {
	return &productRepository{store: st}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	table, err := r.store.LoadAll(ctx, productsCollection)
	if err != nil {
		return nil, err
	}

	var products []*domain.Product
	quarantined := 0

	for _, row := range table.Rows {
		product, ok := parseProductRow(row)
		if !ok {
			quarantined++
			continue
		}
		products = append(products, product)
	}

	if quarantined > 0 {
		logrus.Warnf("Coleção %s: %d linha(s) malformada(s) ignorada(s)", productsCollection, quarantined)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	products, err := r.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, store.ErrRecordNotFound
}

func (r *productRepository) CreateProducts(ctx context.Context, products []*domain.Product) error {
	rows := make([][]string, len(products))
	for i, product := range products {
		rows[i] = productToRow(product)
	}

	return r.store.AppendBatch(ctx, productsCollection, rows)
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	updates := []store.CellUpdate{
		{ID: product.ID, Column: productNameColumn, Value: product.Name},
		{ID: product.ID, Column: productSizeColumn, Value: product.Size},
		{ID: product.ID, Column: productCostColumn, Value: money.ToCell(product.CostPrice)},
		{ID: product.ID, Column: productSaleColumn, Value: money.ToCell(product.SalePrice)},
	}

	result, err := r.store.UpdateCellsBatch(ctx, productsCollection, updates)
	if err != nil {
		return err
	}

	if len(result.Missing) > 0 {
		return store.ErrRecordNotFound
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	handle, err := r.store.FindRowByID(ctx, productsCollection, id)
	if err != nil {
		return err
	}

	return r.store.DeleteRow(ctx, handle)
}

// UpdateStatusBatch baixa/restaura o status de várias peças com duas
// requisições no total, independentemente do tamanho do lote.
func (r *productRepository) UpdateStatusBatch(ctx context.Context, statusByID map[string]domain.ProductStatus) (*store.BatchResult, error) {
	ids := make([]string, 0, len(statusByID))
	for id := range statusByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	updates := make([]store.CellUpdate, 0, len(ids))
	for _, id := range ids {
		updates = append(updates, store.CellUpdate{
			ID:     id,
			Column: productStatusColumn,
			Value:  string(statusByID[id]),
		})
	}

	return r.store.UpdateCellsBatch(ctx, productsCollection, updates)
}

func parseProductRow(row []string) (*domain.Product, bool) {
	if len(row) < productColumnCount || row[0] == "" {
		return nil, false
	}

	return &domain.Product{
		ID:        row[0],
		Name:      row[1],
		Size:      row[2],
		CostPrice: money.Parse(row[3]),
		SalePrice: money.Parse(row[4]),
		Status:    domain.ProductStatus(row[5]),
	}, true
}

func productToRow(product *domain.Product) []string {
	return []string{
		product.ID,
		product.Name,
		product.Size,
		money.ToCell(product.CostPrice),
		money.ToCell(product.SalePrice),
		string(product.Status),
	}
}
