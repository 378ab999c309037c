package repository

import (
	"context"
	"testing"

	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetClosureStatusInsertsNewMonth(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemoryStore()
	st.CreateCollection(closuresCollection, CollectionHeaders()[closuresCollection])

	repo := NewClosureRepository(st)

	require.NoError(t, repo.SetClosureStatus(ctx, "2026-07", domain.MonthClosed))

	closures, err := repo.ListClosures(ctx)
	require.NoError(t, err)
	require.Len(t, closures, 1)
	assert.Equal(t, "2026-07", closures[0].MonthKey)
	assert.Equal(t, domain.MonthClosed, closures[0].Status)

	// Reabrir atualiza a linha existente em vez de duplicar
	require.NoError(t, repo.SetClosureStatus(ctx, "2026-07", domain.MonthOpen))

	closures, err = repo.ListClosures(ctx)
	require.NoError(t, err)
	require.Len(t, closures, 1)
	assert.Equal(t, domain.MonthOpen, closures[0].Status)
}
