package store

import (
	"sync"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddAlwaysAppends(t *testing.T) {
	registry, _ := createTestRegistry(t)
	wishlist := registry.Wishlist("client-1")

	for range 2 {
		_, err := wishlist.Add(t.Context(), entity.WishlistEntry{ProductID: "a"})
		require.NoError(t, err)
	}

	snapshot, err := wishlist.Snapshot(t.Context())
	require.NoError(t, err)
	assert.Len(t, snapshot.Entries, 2)
}

func TestWishlistAddIfAbsentKeepsOneEntry(t *testing.T) {
	registry, _ := createTestRegistry(t)
	wishlist := registry.Wishlist("client-1")

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, ok, err := wishlist.AddIfAbsent(t.Context(), entity.WishlistEntry{ProductID: "a"})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, added)
	snapshot, err := wishlist.Snapshot(t.Context())
	require.NoError(t, err)
	assert.Len(t, snapshot.Entries, 1)

	snapshot, ok, err := wishlist.AddIfAbsent(t.Context(), entity.WishlistEntry{ProductID: "b"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, snapshot.Entries, 2)
}

func TestWishlistRemoveFiltersAllEntries(t *testing.T) {
	registry, _ := createTestRegistry(t)
	wishlist := registry.Wishlist("client-1")

	for _, id := range []string{"a", "b", "a"} {
		_, err := wishlist.Add(t.Context(), entity.WishlistEntry{ProductID: id})
		require.NoError(t, err)
	}

	snapshot, err := wishlist.Remove(t.Context(), "a")
	require.NoError(t, err)
	require.Len(t, snapshot.Entries, 1)
	assert.Equal(t, "b", snapshot.Entries[0].ProductID)
	assert.False(t, snapshot.Contains("a"))
}

func TestWishlistIsIndependentOfCart(t *testing.T) {
	registry, _ := createTestRegistry(t)

	_, err := registry.Wishlist("client-1").Add(t.Context(), entity.WishlistEntry{ProductID: "a"})
	require.NoError(t, err)
	_, err = registry.Cart("client-1").Clear(t.Context())
	require.NoError(t, err)

	snapshot, err := registry.Wishlist("client-1").Clear(t.Context())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Entries)

	snapshot, err = registry.Wishlist("client-1").Snapshot(t.Context())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Entries)
}
