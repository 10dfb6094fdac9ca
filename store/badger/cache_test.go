package badger

import (
	"context"
	"testing"

	"github.com/poiesic/gazetteer/core"
	"github.com/poiesic/gazetteer/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntryCache_NilBackend(t *testing.T) {
	_, err := NewEntryCache(nil)
	assert.Equal(t, ErrBackendRequired, err)
}

func TestEntryCache_RoundTrip(t *testing.T) {
	cache, backend, err := NewMemoryCache()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	key := core.IDFromContent("Sula\tL1\nSula bassana\tL2\n")
	entries := []core.Entry{
		{Term: "Sula", Label: "L1"},
		{Term: "Sula bassana", Label: "L2"},
	}

	require.NoError(t, cache.PutEntries(ctx, key, entries))

	got, err := cache.GetEntries(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestEntryCache_Missing(t *testing.T) {
	cache, backend, err := NewMemoryCache()
	require.NoError(t, err)
	defer backend.Close()

	_, err = cache.GetEntries(context.Background(), core.IDFromContent("never stored"))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntryCache_DifferentKeysAreIndependent(t *testing.T) {
	cache, backend, err := NewMemoryCache()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, cache.PutEntries(ctx, 1, []core.Entry{{Term: "Sula", Label: "L1"}}))
	require.NoError(t, cache.PutEntries(ctx, 2, []core.Entry{{Term: "Homo sapiens", Label: "L3"}}))

	got, err := cache.GetEntries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Homo sapiens", got[0].Term)
}

func TestEntryCache_ClosedBackend(t *testing.T) {
	cache, backend, err := NewMemoryCache()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	_, err = cache.GetEntries(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrStorageClosed)

	err = cache.PutEntries(context.Background(), 1, nil)
	assert.ErrorIs(t, err, store.ErrStorageClosed)
}

func TestEntryCache_CancelledContext(t *testing.T) {
	cache, backend, err := NewMemoryCache()
	require.NoError(t, err)
	defer backend.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = cache.GetEntries(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
