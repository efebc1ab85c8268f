package firestore

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/status"
)

type transactionManager struct {
	client *firestore.Client
}

// txRepositoryFactory hands out repositories bound to one Firestore transaction.
type txRepositoryFactory struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (f *txRepositoryFactory) OrderRepo() repository.OrderRepository {
	return &orderRepository{client: f.client, tx: f.tx}
}

func (f *txRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	repo := NewCustomerRepository(f.client).(*customerRepository)
	repo.tx = f.tx

	return repo
}

// NewTransactionManager creates a TransactionManager on RunTransaction.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &transactionManager{client: client}
}

// Execute runs fn in a Firestore transaction. Firestore may call fn more than
// once on contention, so fn must not have side effects outside the factory.
// A create that loses a race at commit time surfaces as ErrDuplicateOrder.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&txRepositoryFactory{client: tm.client, tx: tx})
	})

	switch {
	case err == nil:
		return nil
	case isAlreadyExists(err):
		return repository.ErrDuplicateOrder
	case isStoreError(err):
		return translateError(err, "transaction failed")
	default:
		// Errors raised by fn itself are returned unchanged.
		return err
	}
}

// isStoreError reports failures raised by Firestore rather than by the callback.
func isStoreError(err error) bool {
	if _, ok := status.FromError(err); ok {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded)
}
