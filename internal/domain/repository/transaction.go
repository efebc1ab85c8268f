package repository

import (
	"context"

	"github.com/pkg/errors"
)

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// CustomerRepo returns a CustomerRepository bound to the current transaction.
	CustomerRepo() CustomerRepository
}

// Driver-neutral failure kinds. Implementations join these with the driver
// error so callers can classify failures with errors.Is.
var (
	// ErrStoreUnavailable marks network, timeout and server availability failures.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrPermissionDenied marks writes rejected by the store's access rules.
	ErrPermissionDenied = errors.New("store permission denied")
)
