package store

import (
	"context"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// CartStore is the persisted cart of one client.
type CartStore struct {
	clientID string
	c        *container[entity.Cart]
	now      func() time.Time
}

func newCartStore(state repository.StateStore, clientID string, ttl time.Duration, now func() time.Time) *CartStore {
	empty := func() entity.Cart {
		return entity.Cart{ClientID: clientID, Items: []entity.LineItem{}}
	}

	return &CartStore{
		clientID: clientID,
		c:        newContainer(state, constants.StateKeyCart+clientID, ttl, empty, entity.Cart.Clone),
		now:      now,
	}
}

// Snapshot returns the current cart.
func (s *CartStore) Snapshot(ctx context.Context) (entity.Cart, error) {
	return s.c.Snapshot(ctx)
}

// Add increments an existing line by one and ignores every other field of
// item. A new line is appended with item.Quantity, where anything below 1 counts as 1.
func (s *CartStore) Add(ctx context.Context, item entity.LineItem) (entity.Cart, error) {
	return s.c.mutate(ctx, func(cart *entity.Cart) bool {
		if i := cart.IndexOf(item.Key()); i >= 0 {
			cart.Items[i].Quantity++
		} else {
			item.Quantity = max(item.Quantity, 1)
			item.Variant = item.Variant.Normalize()
			cart.Items = append(cart.Items, item)
		}
		cart.UpdatedAt = s.now()

		return true
	})
}

// UpdateQuantity sets the quantity of the line unconditionally. Missing lines are ignored.
func (s *CartStore) UpdateQuantity(ctx context.Context, key entity.LineKey, quantity int) (entity.Cart, error) {
	return s.c.mutate(ctx, func(cart *entity.Cart) bool {
		i := cart.IndexOf(key)
		if i < 0 {
			return false
		}
		cart.Items[i].Quantity = quantity
		cart.UpdatedAt = s.now()

		return true
	})
}

// Remove deletes the line if present.
func (s *CartStore) Remove(ctx context.Context, key entity.LineKey) (entity.Cart, error) {
	return s.c.mutate(ctx, func(cart *entity.Cart) bool {
		i := cart.IndexOf(key)
		if i < 0 {
			return false
		}
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		cart.UpdatedAt = s.now()

		return true
	})
}

// Clear empties the cart. Clearing an empty cart still publishes.
func (s *CartStore) Clear(ctx context.Context) (entity.Cart, error) {
	return s.c.mutate(ctx, func(cart *entity.Cart) bool {
		cart.Items = []entity.LineItem{}
		cart.UpdatedAt = s.now()

		return true
	})
}

// Subscribe streams snapshots after each mutation.
func (s *CartStore) Subscribe() (<-chan entity.Cart, func()) {
	return s.c.Subscribe()
}
