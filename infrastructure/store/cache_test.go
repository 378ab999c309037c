package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedStoreServesCachedReads(t *testing.T) {
	inner := NewInMemoryStore()
	inner.CreateCollection("Clientes", []string{"id", "nome", "whatsapp", "endereco"})
	require.NoError(t, inner.Append(context.Background(), "Clientes", []string{"c1", "Ana", "", ""}))

	cached := NewCachedStore(inner)

	table, err := cached.LoadAll(context.Background(), "Clientes")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	// Escrita por fora do cache não aparece até invalidar
	require.NoError(t, inner.Append(context.Background(), "Clientes", []string{"c2", "Maria", "", ""}))

	table, err = cached.LoadAll(context.Background(), "Clientes")
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestCachedStoreInvalidatesOnWrite(t *testing.T) {
	inner := NewInMemoryStore()
	inner.CreateCollection("Clientes", []string{"id", "nome", "whatsapp", "endereco"})

	cached := NewCachedStore(inner)

	table, err := cached.LoadAll(context.Background(), "Clientes")
	require.NoError(t, err)
	require.Empty(t, table.Rows)

	require.NoError(t, cached.Append(context.Background(), "Clientes", []string{"c1", "Ana", "", ""}))

	table, err = cached.LoadAll(context.Background(), "Clientes")
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestCachedStoreInvalidatesOnBatchUpdate(t *testing.T) {
	inner := NewInMemoryStore()
	inner.CreateCollection("Produtos", []string{"id", "nome", "tamanho", "preco_custo", "preco_venda", "status"})
	require.NoError(t, inner.Append(context.Background(), "Produtos", []string{"p1", "Vestido", "M", "50.00", "120.00", "Disponível"}))

	cached := NewCachedStore(inner)

	_, err := cached.LoadAll(context.Background(), "Produtos")
	require.NoError(t, err)

	result, err := cached.UpdateCellsBatch(context.Background(), "Produtos", []CellUpdate{
		{ID: "p1", Column: 6, Value: "Vendido"},
	})
	require.NoError(t, err)
	require.Empty(t, result.Missing)

	table, err := cached.LoadAll(context.Background(), "Produtos")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Vendido", table.Rows[0][5])
}
