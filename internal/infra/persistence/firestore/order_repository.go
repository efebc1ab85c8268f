package firestore

import (
	"context"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
)

type orderRepository struct {
	client *firestore.Client
	// tx is set for repositories handed out by the transaction manager.
	tx *firestore.Transaction
}

// NewOrderRepository creates an OrderRepository on the orders collection.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (repo *orderRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionOrders)
}

// Create fails with ErrDuplicateOrder when orders/{id} exists. Inside a
// transaction the existence check is a transactional read, so it must run
// before any write of the same transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	ref := repo.collection().Doc(order.ID)
	doc := newOrderDoc(order)

	if repo.tx != nil {
		if _, err := repo.tx.Get(ref); err == nil {
			return repository.ErrDuplicateOrder
		} else if !isNotFound(err) {
			return translateError(err, "failed to check order existence")
		}

		return translateError(repo.tx.Create(ref, doc), "failed to create order")
	}

	if _, err := ref.Create(ctx, doc); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrDuplicateOrder
		}

		return translateError(err, "failed to create order")
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	ref := repo.collection().Doc(id)

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
			return nil, repository.ErrOrderNotFound
		}

		return nil, translateError(err, "failed to find order by id")
	}

	var doc orderDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode order %s", id)
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func (repo *orderRepository) List(ctx context.Context, filter *repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.filtered(filter).
		OrderBy(fieldCreatedAt, firestore.Desc).
		Offset(max(filter.Offset, 0)).
		Limit(filter.PageLimit())

	iter := repo.documents(ctx, query)
	defer iter.Stop()

	var orders []*entity.Order
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translateError(err, "failed to list orders")
		}

		var doc orderDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode order %s", snap.Ref.ID)
		}
		orders = append(orders, doc.toEntity(snap.Ref.ID))
	}

	return orders, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, trackingNumber string, at time.Time) error {
	updates := []firestore.Update{
		{Path: fieldStatus, Value: status.String()},
		{Path: fieldUpdatedAt, Value: at},
	}
	if trackingNumber != "" {
		updates = append(updates, firestore.Update{Path: "trackingNumber", Value: trackingNumber})
	}

	ref := repo.collection().Doc(id)

	var err error
	if repo.tx != nil {
		err = repo.tx.Update(ref, updates)
	} else {
		_, err = ref.Update(ctx, updates)
	}
	if err != nil {
		if isNotFound(err) {
			return repository.ErrOrderNotFound
		}

		return translateError(err, "failed to update order status")
	}

	return nil
}

var statsStatuses = []entity.OrderStatus{
	entity.OrderStatusPending,
	entity.OrderStatusProcessing,
	entity.OrderStatusShipped,
	entity.OrderStatusDelivered,
	entity.OrderStatusCancelled,
}

// Stats runs server-side COUNT and SUM aggregations: one over the whole range
// and one COUNT per status. Aggregations are not transactional.
func (repo *orderRepository) Stats(ctx context.Context, dateRange entity.DateRange) (*entity.DashboardStats, error) {
	base := repo.filtered(&repository.OrderFilter{Range: dateRange})

	totals, err := base.NewAggregationQuery().
		WithCount("count").
		WithSum(fieldTotal, "revenue").
		Get(ctx)
	if err != nil {
		return nil, translateError(err, "failed to aggregate orders")
	}

	stats := &entity.DashboardStats{
		TotalOrders:  aggregateInt(totals["count"]),
		TotalRevenue: aggregateFloat(totals["revenue"]),
		Range:        dateRange,
	}

	for _, status := range statsStatuses {
		byStatus := base.Where(fieldStatus, "==", status.String())
		result, err := byStatus.
			NewAggregationQuery().
			WithCount("count").
			Get(ctx)
		if err != nil {
			return nil, translateError(err, "failed to count orders by status")
		}
		stats.StatusCounts.Add(status, aggregateInt(result["count"]))
	}

	stats.FinalizeAverage()

	return stats, nil
}

// AggregateForUser folds every order of the user, the same way the summary
// was computed before it was materialized.
func (repo *orderRepository) AggregateForUser(ctx context.Context, userID string) (*entity.CustomerAggregate, error) {
	iter := repo.documents(ctx, repo.collection().Where(fieldUserID, "==", userID))
	defer iter.Stop()

	aggregate := &entity.CustomerAggregate{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translateError(err, "failed to scan customer orders")
		}

		var doc orderDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode order %s", snap.Ref.ID)
		}
		aggregate.Apply(doc.toEntity(snap.Ref.ID))
	}

	return aggregate, nil
}

func (repo *orderRepository) filtered(filter *repository.OrderFilter) firestore.Query {
	query := repo.collection().Query
	if filter == nil {
		return query
	}
	if filter.UserID != "" {
		query = query.Where(fieldUserID, "==", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where(fieldStatus, "==", filter.Status.String())
	}
	if !filter.Range.From.IsZero() {
		query = query.Where(fieldCreatedAt, ">=", filter.Range.From)
	}
	if !filter.Range.To.IsZero() {
		query = query.Where(fieldCreatedAt, "<", filter.Range.To)
	}

	return query
}

func (repo *orderRepository) documents(ctx context.Context, query firestore.Query) *firestore.DocumentIterator {
	if repo.tx != nil {
		return repo.tx.Documents(query)
	}

	return query.Documents(ctx)
}

// aggregateInt reads a COUNT result.
func aggregateInt(v any) int64 {
	value, ok := v.(*firestorepb.Value)
	if !ok || value == nil {
		return 0
	}

	switch typed := value.GetValueType().(type) {
	case *firestorepb.Value_IntegerValue:
		return typed.IntegerValue
	case *firestorepb.Value_DoubleValue:
		return int64(typed.DoubleValue)
	default:
		return 0
	}
}

// aggregateFloat reads a SUM result, which is an integer when every summed value is.
func aggregateFloat(v any) float64 {
	value, ok := v.(*firestorepb.Value)
	if !ok || value == nil {
		return 0
	}

	switch typed := value.GetValueType().(type) {
	case *firestorepb.Value_DoubleValue:
		return typed.DoubleValue
	case *firestorepb.Value_IntegerValue:
		return float64(typed.IntegerValue)
	default:
		return 0
	}
}
