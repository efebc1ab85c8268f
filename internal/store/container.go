// Package store holds the client-owned cart and wishlist containers.
//
// Each container serializes its mutations, persists the full snapshot to the
// state store after every change and publishes the new snapshot to its
// subscribers. State is re-read before every mutation so that several API
// instances sharing one Redis see each other's writes.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

type container[T any] struct {
	mu    sync.Mutex
	key   string
	ttl   time.Duration
	state repository.StateStore
	empty func() T
	clone func(T) T

	subMu   sync.Mutex
	subs    map[int]chan T
	nextSub int
}

func newContainer[T any](state repository.StateStore, key string, ttl time.Duration, empty func() T, clone func(T) T) *container[T] {
	return &container[T]{
		key:   key,
		ttl:   ttl,
		state: state,
		empty: empty,
		clone: clone,
		subs:  make(map[int]chan T),
	}
}

func (c *container[T]) load(ctx context.Context) (T, error) {
	data, err := c.state.Get(ctx, c.key)
	if errors.Is(err, repository.ErrStateNotFound) {
		return c.empty(), nil
	}
	if err != nil {
		var zero T

		return zero, errors.Wrapf(err, "failed to load %s", c.key)
	}

	value := c.empty()
	if err := json.Unmarshal(data, &value); err != nil {
		// A corrupt snapshot is treated as empty so the client can recover.
		return c.empty(), nil
	}

	return c.clone(value), nil
}

// Snapshot returns the persisted value.
func (c *container[T]) Snapshot(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx)
}

// mutate applies fn to a fresh copy, persists it and publishes it. When fn
// reports no change nothing is written.
func (c *container[T]) mutate(ctx context.Context, fn func(value *T) bool) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.load(ctx)
	if err != nil {
		return current, err
	}

	next := c.clone(current)
	if !fn(&next) {
		return current, nil
	}

	data, err := json.Marshal(next)
	if err != nil {
		return current, errors.WithStack(err)
	}
	if err := c.state.Set(ctx, c.key, data, c.ttl); err != nil {
		return current, errors.Wrapf(err, "failed to persist %s", c.key)
	}

	c.publish(next)

	return c.clone(next), nil
}

// Subscribe returns a channel of snapshots and a function that cancels the
// subscription. A slow subscriber only sees the latest snapshot.
func (c *container[T]) Subscribe() (<-chan T, func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan T, 1)
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.subMu.Lock()
			defer c.subMu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

func (c *container[T]) subscriberCount() int {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	return len(c.subs)
}

func (c *container[T]) publish(value T) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- c.clone(value)
	}
}
