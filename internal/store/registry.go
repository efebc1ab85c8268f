package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"

	"go.uber.org/fx"
)

type entry struct {
	cart     *CartStore
	wishlist *WishlistStore
	lastUsed time.Time
}

func (e *entry) idle() bool {
	return e.cart.c.subscriberCount() == 0 && e.wishlist.c.subscriberCount() == 0
}

// Registry owns one cart and one wishlist store per client id. Entries that
// have been idle for longer than the eviction interval and have no
// subscribers are dropped by the sweeper; their state stays persisted.
type Registry struct {
	mu          sync.Mutex
	entries     map[string]*entry
	state       repository.StateStore
	cartTTL     time.Duration
	wishlistTTL time.Duration
	idleAfter   time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// NewRegistry creates an empty registry over state.
func NewRegistry(state repository.StateStore, cfg *config.StateConfig, logger *slog.Logger) *Registry {
	return &Registry{
		entries:     make(map[string]*entry),
		state:       state,
		cartTTL:     cfg.CartTTL,
		wishlistTTL: cfg.WishlistTTL,
		idleAfter:   cfg.IdleEviction,
		now:         time.Now,
		logger:      logger,
	}
}

func (r *Registry) get(clientID string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[clientID]
	if !ok {
		e = &entry{
			cart:     newCartStore(r.state, clientID, r.cartTTL, r.now),
			wishlist: newWishlistStore(r.state, clientID, r.wishlistTTL, r.now),
		}
		r.entries[clientID] = e
	}
	e.lastUsed = r.now()

	return e
}

// Cart returns the cart store of clientID.
func (r *Registry) Cart(clientID string) *CartStore {
	return r.get(clientID).cart
}

// Wishlist returns the wishlist store of clientID.
func (r *Registry) Wishlist(clientID string) *WishlistStore {
	return r.get(clientID).wishlist
}

// Len is the number of live entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Sweep evicts idle entries and returns how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleAfter)
	evicted := 0
	for clientID, e := range r.entries {
		if e.lastUsed.Before(cutoff) && e.idle() {
			delete(r.entries, clientID)
			evicted++
		}
	}

	return evicted
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("Evicted idle client stores", slog.Int("count", n))
			}
		}
	}
}

// RegistryParams holds the dependencies of ProvideRegistry.
type RegistryParams struct {
	fx.In

	Lc     fx.Lifecycle
	State  repository.StateStore
	Config *config.Config
	Logger *slog.Logger
}

// ProvideRegistry builds the registry and runs its sweeper for the lifetime of the app.
func ProvideRegistry(params RegistryParams) *Registry {
	registry := NewRegistry(params.State, params.Config.State, params.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				registry.Run(ctx, max(params.Config.State.IdleEviction/2, time.Second))
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})

	return registry
}
