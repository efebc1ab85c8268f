package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an OrderRepository on db, which may be a transaction.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order. The primary key doubles as the idempotency guard:
// an existing row is left untouched and reported as ErrDuplicateOrder.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	m, err := toOrderModel(order)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(m)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateOrder
		}

		return translateError(errors.Wrap(result.Error, "failed to create order"))
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateOrder
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var m model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, translateError(errors.Wrap(err, "failed to find order by id"))
	}

	return toOrderDomain(&m)
}

func (repo *orderRepository) List(ctx context.Context, filter *repository.OrderFilter) ([]*entity.Order, error) {
	var models []*model.OrderModel
	err := repo.filtered(ctx, filter).
		Order("created_at DESC").
		Limit(filter.PageLimit()).
		Offset(max(filter.Offset, 0)).
		Find(&models).Error
	if err != nil {
		return nil, translateError(errors.Wrap(err, "failed to list orders"))
	}

	orders := make([]*entity.Order, 0, len(models))
	for _, m := range models {
		order, err := toOrderDomain(m)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, trackingNumber string, at time.Time) error {
	updates := map[string]any{
		"status":     status.String(),
		"updated_at": at,
	}
	if trackingNumber != "" {
		updates["tracking_number"] = trackingNumber
	}

	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateError(errors.Wrap(result.Error, "failed to update order status"))
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

type statusRow struct {
	Status  string
	Count   int64
	Revenue float64
}

// Stats groups by status on a read replica when one is configured.
func (repo *orderRepository) Stats(ctx context.Context, dateRange entity.DateRange) (*entity.DashboardStats, error) {
	var rows []statusRow
	err := repo.filtered(ctx, &repository.OrderFilter{Range: dateRange}).
		Clauses(dbresolver.Read).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(errors.Wrap(err, "failed to compute order stats"))
	}

	stats := &entity.DashboardStats{Range: dateRange}
	for _, row := range rows {
		stats.TotalOrders += row.Count
		stats.TotalRevenue += row.Revenue
		stats.StatusCounts.Add(entity.OrderStatus(row.Status), row.Count)
	}
	stats.FinalizeAverage()

	return stats, nil
}

type aggregateRow struct {
	Orders      int64
	TotalSpent  float64
	LastOrderAt *time.Time
}

func (repo *orderRepository) AggregateForUser(ctx context.Context, userID string) (*entity.CustomerAggregate, error) {
	var row aggregateRow
	err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Clauses(dbresolver.Read).
		Select("COUNT(*) AS orders, COALESCE(SUM(total), 0) AS total_spent, MAX(created_at) AS last_order_at").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, translateError(errors.Wrap(err, "failed to aggregate customer orders"))
	}

	return &entity.CustomerAggregate{
		Orders:      row.Orders,
		TotalSpent:  row.TotalSpent,
		LastOrderAt: row.LastOrderAt,
	}, nil
}

func (repo *orderRepository) filtered(ctx context.Context, filter *repository.OrderFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter == nil {
		return query
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if !filter.Range.From.IsZero() {
		query = query.Where("created_at >= ?", filter.Range.From)
	}
	if !filter.Range.To.IsZero() {
		query = query.Where("created_at < ?", filter.Range.To)
	}

	return query
}
