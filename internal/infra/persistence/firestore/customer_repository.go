package firestore

import (
	"context"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type customerRepository struct {
	client *firestore.Client
	tx     *firestore.Transaction
	now    func() time.Time
}

// NewCustomerRepository creates a CustomerRepository on the users collection.
func NewCustomerRepository(client *firestore.Client) repository.CustomerRepository {
	return &customerRepository{client: client, now: time.Now}
}

func (repo *customerRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

func (repo *customerRepository) set(ctx context.Context, ref *firestore.DocumentRef, data map[string]any) error {
	if repo.tx != nil {
		return repo.tx.Set(ref, data, firestore.MergeAll)
	}
	_, err := ref.Set(ctx, data, firestore.MergeAll)

	return err
}

// Upsert merges profile fields. createdAt is written only when the document is new.
func (repo *customerRepository) Upsert(ctx context.Context, customer *entity.Customer) error {
	ref := repo.collection().Doc(customer.UID)
	now := repo.now().UTC()

	data := map[string]any{
		"email":       customer.Email,
		"displayName": customer.DisplayName,
		fieldUpdatedAt: now,
	}
	if customer.DefaultAddress != nil {
		data["defaultAddress"] = newAddressDoc(*customer.DefaultAddress)
	}

	exists, err := repo.exists(ctx, ref)
	if err != nil {
		return err
	}
	if !exists {
		data[fieldCreatedAt] = now
		data["isAdmin"] = customer.IsAdmin
	}

	return translateError(repo.set(ctx, ref, data), "failed to upsert customer")
}

func (repo *customerRepository) FindByID(ctx context.Context, uid string) (*entity.Customer, error) {
	ref := repo.collection().Doc(uid)

	var (
		snap *firestore.DocumentSnapshot
		err  error
	)
	if repo.tx != nil {
		snap, err = repo.tx.Get(ref)
	} else {
		snap, err = ref.Get(ctx)
	}
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, translateError(err, "failed to find customer")
	}

	var doc customerDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode customer %s", uid)
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func (repo *customerRepository) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	query := repo.collection().
		OrderBy(fieldUpdatedAt, firestore.Desc).
		Offset(max(offset, 0)).
		Limit(repository.ClampLimit(limit))

	var iter *firestore.DocumentIterator
	if repo.tx != nil {
		iter = repo.tx.Documents(query)
	} else {
		iter = query.Documents(ctx)
	}
	defer iter.Stop()

	var customers []*entity.Customer
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translateError(err, "failed to list customers")
		}

		var doc customerDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode customer %s", snap.Ref.ID)
		}
		customers = append(customers, doc.toEntity(snap.Ref.ID))
	}

	return customers, nil
}

// RecordOrder increments the aggregate with field transforms, so it needs no
// read and can follow the order write inside the same transaction.
func (repo *customerRepository) RecordOrder(ctx context.Context, order *entity.Order) error {
	data := map[string]any{
		"email":       order.UserEmail,
		"displayName": order.UserName,
		"aggregate": map[string]any{
			"orders":      firestore.Increment(1),
			"totalSpent":  firestore.Increment(order.Total),
			"lastOrderAt": order.CreatedAt,
		},
		fieldUpdatedAt: order.CreatedAt,
	}

	return translateError(repo.set(ctx, repo.collection().Doc(order.UserID), data), "failed to record customer order")
}

func (repo *customerRepository) SetAggregate(ctx context.Context, uid string, aggregate *entity.CustomerAggregate) error {
	ref := repo.collection().Doc(uid)
	updates := []firestore.Update{
		{Path: "aggregate", Value: aggregateDoc{
			Orders:      aggregate.Orders,
			TotalSpent:  aggregate.TotalSpent,
			LastOrderAt: aggregate.LastOrderAt,
		}},
		{Path: fieldUpdatedAt, Value: repo.now().UTC()},
	}

	var err error
	if repo.tx != nil {
		err = repo.tx.Update(ref, updates)
	} else {
		_, err = ref.Update(ctx, updates)
	}
	if err != nil {
		if isNotFound(err) {
			return repository.ErrCustomerNotFound
		}

		return translateError(err, "failed to set customer aggregate")
	}

	return nil
}

func (repo *customerRepository) SetAdmin(ctx context.Context, uid string, admin bool) error {
	data := map[string]any{
		"isAdmin":      admin,
		fieldUpdatedAt: repo.now().UTC(),
	}

	return translateError(repo.set(ctx, repo.collection().Doc(uid), data), "failed to set admin flag")
}

func (repo *customerRepository) exists(ctx context.Context, ref *firestore.DocumentRef) (bool, error) {
	var err error
	if repo.tx != nil {
		_, err = repo.tx.Get(ref)
	} else {
		_, err = ref.Get(ctx)
	}

	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, translateError(err, "failed to read customer")
	}
}
