package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrStateNotFound is returned when a state key has no value.
var ErrStateNotFound = errors.New("state key not found")

// StateStore is the durable key-value store behind client-owned state such as
// carts, wishlists and settings overrides.
type StateStore interface {
	// Get returns the value stored under key, or ErrStateNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl keeps the value until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// SetNX stores value only if key is absent and reports whether it did.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteIfEquals removes key only while it still holds value and reports
	// whether it did.
	DeleteIfEquals(ctx context.Context, key string, value []byte) (bool, error)
}

// SettingsRepository stores the catalog endpoint overrides.
type SettingsRepository interface {
	// GetCatalogSettings returns the overrides; unset fields are zero.
	GetCatalogSettings(ctx context.Context) (*entity.CatalogSettings, error)

	// SaveCatalogSettings writes non-zero fields and clears zero ones.
	SaveCatalogSettings(ctx context.Context, settings *entity.CatalogSettings) error

	// ResetCatalogSettings removes every override.
	ResetCatalogSettings(ctx context.Context) error
}
