package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCustomerNotFound is returned when no profile exists for a uid.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines operations on users/{uid} profiles.
type CustomerRepository interface {
	// Upsert writes the profile fields (email, display name, default address)
	// and leaves the aggregate and admin mirror untouched.
	Upsert(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a profile, or ErrCustomerNotFound.
	FindByID(ctx context.Context, uid string) (*entity.Customer, error)

	// List pages through profiles, most recently updated first. Recording an
	// order updates the profile, so active customers come first.
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)

	// RecordOrder folds a newly created order into the materialized aggregate,
	// creating the profile when missing.
	RecordOrder(ctx context.Context, order *entity.Order) error

	// SetAggregate overwrites the materialized aggregate.
	SetAggregate(ctx context.Context, uid string, aggregate *entity.CustomerAggregate) error

	// SetAdmin mirrors the admin claim on the profile.
	SetAdmin(ctx context.Context, uid string, admin bool) error
}
