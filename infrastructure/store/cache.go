package store

import (
	"context"
	"sync"
)

// CachedStore guarda o resultado de LoadAll por coleção e descarta o cache
// INTEIRO em qualquer mutação. É a mesma estratégia grosseira do sistema
// original: simples e nunca serve estoque ou extrato velho depois de uma
// escrita.
type CachedStore struct {
	inner Store

	mu     sync.Mutex
	tables map[string]*Table
}

func NewCachedStore(inner Store) *CachedStore {
	return &CachedStore{
		inner:  inner,
		tables: make(map[string]*Table),
	}
}

func (c *CachedStore) LoadAll(ctx context.Context, collection string) (*Table, error) {
	c.mu.Lock()
	if table, ok := c.tables[collection]; ok {
		c.mu.Unlock()
		return table, nil
	}
	c.mu.Unlock()

	table, err := c.inner.LoadAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tables[collection] = table
	c.mu.Unlock()

	return table, nil
}

// Invalidate descarta todas as leituras em cache.
func (c *CachedStore) Invalidate() {
	c.mu.Lock()
	c.tables = make(map[string]*Table)
	c.mu.Unlock()
}

func (c *CachedStore) Append(ctx context.Context, collection string, row []string) error {
	c.Invalidate()
	return c.inner.Append(ctx, collection, row)
}

func (c *CachedStore) AppendBatch(ctx context.Context, collection string, rows [][]string) error {
	c.Invalidate()
	return c.inner.AppendBatch(ctx, collection, rows)
}

func (c *CachedStore) FindRowByID(ctx context.Context, collection, id string) (*RowHandle, error) {
	return c.inner.FindRowByID(ctx, collection, id)
}

func (c *CachedStore) UpdateCell(ctx context.Context, handle *RowHandle, column int, value string) error {
	c.Invalidate()
	return c.inner.UpdateCell(ctx, handle, column, value)
}

func (c *CachedStore) UpdateCellsBatch(ctx context.Context, collection string, updates []CellUpdate) (*BatchResult, error) {
	c.Invalidate()
	return c.inner.UpdateCellsBatch(ctx, collection, updates)
}

func (c *CachedStore) DeleteRow(ctx context.Context, handle *RowHandle) error {
	c.Invalidate()
	return c.inner.DeleteRow(ctx, handle)
}

func (c *CachedStore) ReplaceAll(ctx context.Context, collection string, header []string, rows [][]string) error {
	c.Invalidate()
	return c.inner.ReplaceAll(ctx, collection, header, rows)
}
