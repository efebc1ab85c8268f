package store

import (
	"context"
	"slices"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// WishlistStore is the persisted wishlist of one client.
type WishlistStore struct {
	clientID string
	c        *container[entity.Wishlist]
	now      func() time.Time
}

func newWishlistStore(state repository.StateStore, clientID string, ttl time.Duration, now func() time.Time) *WishlistStore {
	empty := func() entity.Wishlist {
		return entity.Wishlist{ClientID: clientID, Entries: []entity.WishlistEntry{}}
	}

	return &WishlistStore{
		clientID: clientID,
		c:        newContainer(state, constants.StateKeyWishlist+clientID, ttl, empty, entity.Wishlist.Clone),
		now:      now,
	}
}

// Snapshot returns the current wishlist.
func (s *WishlistStore) Snapshot(ctx context.Context) (entity.Wishlist, error) {
	return s.c.Snapshot(ctx)
}

// Add appends the entry without a membership check.
func (s *WishlistStore) Add(ctx context.Context, entry entity.WishlistEntry) (entity.Wishlist, error) {
	return s.c.mutate(ctx, func(w *entity.Wishlist) bool {
		w.Entries = append(w.Entries, entry)
		w.UpdatedAt = s.now()

		return true
	})
}

// AddIfAbsent appends the entry unless its product is already saved. The
// membership check and the append run under the same lock, so concurrent
// adds of one product leave a single entry. It reports whether it appended.
func (s *WishlistStore) AddIfAbsent(ctx context.Context, entry entity.WishlistEntry) (entity.Wishlist, bool, error) {
	var added bool
	wishlist, err := s.c.mutate(ctx, func(w *entity.Wishlist) bool {
		if w.Contains(entry.ProductID) {
			return false
		}
		w.Entries = append(w.Entries, entry)
		w.UpdatedAt = s.now()
		added = true

		return true
	})

	return wishlist, added, err
}

// Remove drops every entry for productID.
func (s *WishlistStore) Remove(ctx context.Context, productID string) (entity.Wishlist, error) {
	return s.c.mutate(ctx, func(w *entity.Wishlist) bool {
		before := len(w.Entries)
		w.Entries = slices.DeleteFunc(w.Entries, func(e entity.WishlistEntry) bool {
			return e.ProductID == productID
		})
		if len(w.Entries) == before {
			return false
		}
		w.UpdatedAt = s.now()

		return true
	})
}

// Clear empties the wishlist.
func (s *WishlistStore) Clear(ctx context.Context) (entity.Wishlist, error) {
	return s.c.mutate(ctx, func(w *entity.Wishlist) bool {
		w.Entries = []entity.WishlistEntry{}
		w.UpdatedAt = s.now()

		return true
	})
}

// Subscribe streams snapshots after each mutation.
func (s *WishlistStore) Subscribe() (<-chan entity.Wishlist, func()) {
	return s.c.Subscribe()
}
