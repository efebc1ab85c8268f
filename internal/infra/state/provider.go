// Package state provides the client-keyed state store (carts, wishlists, locks, settings).
package state

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// ProviderParams defines dependencies for selecting a StateStore
type ProviderParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStateStore selects the state store implementation from config.
func NewStateStore(params ProviderParams) (repository.StateStore, error) {
	switch params.Config.State.Provider {
	case constants.StateProviderRedis:
		return NewRedisStore(params.Lifecycle, params.Config, params.Logger), nil
	case constants.StateProviderMemory, "":
		params.Logger.Warn("Using in-memory state store; carts are lost on restart")

		return NewMemoryStore(), nil
	default:
		return nil, errors.Newf("unknown state provider: %s", params.Config.State.Provider)
	}
}
