// services/flag_store_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFlagStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFlagStore()

	got, err := store.GetFlag(ctx, 1, CategoryCalorie)
	require.NoError(t, err)
	assert.Empty(t, got, "unset flag reads as empty")

	require.NoError(t, store.SetFlag(ctx, 1, CategoryCalorie, "2026-03-10"))
	require.NoError(t, store.SetFlag(ctx, 1, CategoryWater, "2026-03-10"))
	require.NoError(t, store.SetFlag(ctx, 2, CategoryCalorie, "2026-03-10"))

	got, err = store.GetFlag(ctx, 1, CategoryCalorie)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", got)

	require.NoError(t, store.ClearFlags(ctx, 1, AllCategories))

	got, err = store.GetFlag(ctx, 1, CategoryWater)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Flags are per user; clearing one account leaves the other intact.
	got, err = store.GetFlag(ctx, 2, CategoryCalorie)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", got)
}
