package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/infra/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingState wraps a MemoryStore and fails writes on demand.
type failingState struct {
	*state.MemoryStore
	setErr error
}

func (f *failingState) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}

	return f.MemoryStore.Set(ctx, key, value, ttl)
}

var testNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func createTestRegistry(t *testing.T) (*Registry, *failingState) {
	t.Helper()

	st := &failingState{MemoryStore: state.NewMemoryStore()}
	registry := NewRegistry(st, &config.StateConfig{
		CartTTL:      time.Hour,
		WishlistTTL:  time.Hour,
		IdleEviction: time.Minute,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	registry.now = func() time.Time { return testNow }

	return registry, st
}

func lineItem(id string, price float64, qty int) entity.LineItem {
	return entity.LineItem{ProductID: id, Title: "Product " + id, UnitPrice: price, Quantity: qty}
}

func TestCartAddDistinctIDsCountsAdds(t *testing.T) {
	registry, _ := createTestRegistry(t)
	cart := registry.Cart("client-1")
	ctx := t.Context()

	adds := []string{"a", "b", "a", "c", "a", "b"}
	for _, id := range adds {
		_, err := cart.Add(ctx, lineItem(id, 1, 0))
		require.NoError(t, err)
	}

	snapshot, err := cart.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 3)

	got := map[string]int{}
	for _, item := range snapshot.Items {
		got[item.ProductID] = item.Quantity
	}
	assert.Equal(t, map[string]int{"a": 3, "b": 2, "c": 1}, got)
	assert.Equal(t, []string{"a", "b", "c"}, []string{snapshot.Items[0].ProductID, snapshot.Items[1].ProductID, snapshot.Items[2].ProductID})
}

func TestCartAddExistingIgnoresOtherFields(t *testing.T) {
	registry, _ := createTestRegistry(t)
	cart := registry.Cart("client-1")

	_, err := cart.Add(t.Context(), lineItem("a", 10, 2))
	require.NoError(t, err)

	repeat := lineItem("a", 99, 3)
	repeat.Title = "changed"
	snapshot, err := cart.Add(t.Context(), repeat)
	require.NoError(t, err)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 3, snapshot.Items[0].Quantity)
	assert.InDelta(t, 10, snapshot.Items[0].UnitPrice, 1e-9)
	assert.Equal(t, "Product a", snapshot.Items[0].Title)
}

func TestCartAddExistingIncrementsByOne(t *testing.T) {
	registry, _ := createTestRegistry(t)
	cart := registry.Cart("client-1")

	_, err := cart.Add(t.Context(), lineItem("a", 10, 1))
	require.NoError(t, err)

	snapshot, err := cart.Add(t.Context(), lineItem("a", 10, 4))
	require.NoError(t, err)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
}

func TestCartVariantsAreDistinctLines(t *testing.T) {
	registry, _ := createTestRegistry(t)
	cart := registry.Cart("client-1")

	small := lineItem("shirt", 10, 1)
	small.Variant = entity.Variant{Size: "S"}
	large := lineItem("shirt", 10, 1)
	large.Variant = entity.Variant{Size: "L"}
	largeAgain := lineItem("shirt", 10, 1)
	largeAgain.Variant = entity.Variant{Size: " L "}

	for _, item := range []entity.LineItem{small, large, largeAgain} {
		_, err := cart.Add(t.Context(), item)
		require.NoError(t, err)
	}

	snapshot, err := cart.Snapshot(t.Context())
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
	assert.Equal(t, 2, snapshot.Items[1].Quantity)
}

func TestCartUpdateThenRemove(t *testing.T) {
	registry, _ := createTestRegistry(t)
	cart := registry.Cart("client-1")
	ctx := t.Context()
	key := entity.NewLineKey("a", entity.Variant{})

	_, err := cart.Add(ctx, lineItem("a", 1, 1))
	require.NoError(t, err)

	snapshot, err := cart.UpdateQuantity(ctx, key, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, snapshot.Items[0].Quantity)

	snapshot, err = cart.Remove(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, -1, snapshot.IndexOf(key))

	// Both operations are no-ops for a missing line.
	snapshot, err = cart.UpdateQuantity(ctx, key, 3)
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
	snapshot, err = cart.Remove(ctx, key)
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
}

func TestCartUpdateQuantityDoesNotClamp(t *testing.T) {
	registry, _ := createTestRegistry(t)
	cart := registry.Cart("client-1")
	key := entity.NewLineKey("a", entity.Variant{})

	_, err := cart.Add(t.Context(), lineItem("a", 1, 1))
	require.NoError(t, err)

	snapshot, err := cart.UpdateQuantity(t.Context(), key, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Items[0].Quantity)
}

func TestCartClearTwice(t *testing.T) {
	registry, _ := createTestRegistry(t)
	cart := registry.Cart("client-1")

	_, err := cart.Add(t.Context(), lineItem("a", 1, 1))
	require.NoError(t, err)

	for range 2 {
		snapshot, err := cart.Clear(t.Context())
		require.NoError(t, err)
		assert.True(t, snapshot.IsEmpty())
	}
}

func TestCartPersistenceFailureKeepsPreviousSnapshot(t *testing.T) {
	registry, st := createTestRegistry(t)
	cart := registry.Cart("client-1")

	_, err := cart.Add(t.Context(), lineItem("a", 1, 1))
	require.NoError(t, err)

	st.setErr = errors.New("redis down")
	snapshot, err := cart.Add(t.Context(), lineItem("b", 1, 1))
	require.ErrorContains(t, err, "redis down")
	assert.Len(t, snapshot.Items, 1)

	st.setErr = nil
	snapshot, err = cart.Snapshot(t.Context())
	require.NoError(t, err)
	assert.Len(t, snapshot.Items, 1)
}

func TestCartIsPersistedAcrossRegistries(t *testing.T) {
	registry, st := createTestRegistry(t)

	_, err := registry.Cart("client-1").Add(t.Context(), lineItem("a", 1, 2))
	require.NoError(t, err)

	other := NewRegistry(st, &config.StateConfig{CartTTL: time.Hour, WishlistTTL: time.Hour, IdleEviction: time.Minute}, registry.logger)
	snapshot, err := other.Cart("client-1").Snapshot(t.Context())
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)

	snapshot, err = other.Cart("client-2").Snapshot(t.Context())
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
	assert.Equal(t, "client-2", snapshot.ClientID)
}

func TestCartSubscribe(t *testing.T) {
	registry, _ := createTestRegistry(t)
	cart := registry.Cart("client-1")

	updates, cancel := cart.Subscribe()

	_, err := cart.Add(t.Context(), lineItem("a", 1, 1))
	require.NoError(t, err)
	_, err = cart.Add(t.Context(), lineItem("b", 1, 1))
	require.NoError(t, err)

	// Only the latest snapshot is buffered.
	latest := <-updates
	assert.Len(t, latest.Items, 2)
	select {
	case extra := <-updates:
		t.Fatalf("unexpected snapshot %+v", extra)
	default:
	}

	cancel()
	cancel()
	_, ok := <-updates
	assert.False(t, ok)

	_, err = cart.Add(t.Context(), lineItem("c", 1, 1))
	require.NoError(t, err)
}
