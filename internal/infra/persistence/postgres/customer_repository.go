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
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a CustomerRepository on db, which may be a transaction.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) Upsert(ctx context.Context, customer *entity.Customer) error {
	m := toCustomerModel(customer)
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	columns := []string{"email", "display_name", "updated_at"}
	if m.DefaultAddress != nil {
		columns = append(columns, "default_address")
	}

	err := repo.db.WithContext(ctx).
		Omit("is_admin", "order_count", "total_spent", "last_order_at").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(m).Error
	if err != nil {
		return translateError(errors.Wrap(err, "failed to upsert customer"))
	}

	return nil
}

func (repo *customerRepository) FindByID(ctx context.Context, uid string) (*entity.Customer, error) {
	var m model.CustomerModel
	if err := repo.db.WithContext(ctx).Where("uid = ?", uid).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, translateError(errors.Wrap(err, "failed to find customer"))
	}

	return toCustomerDomain(&m), nil
}

func (repo *customerRepository) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	var models []*model.CustomerModel
	err := repo.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(repository.ClampLimit(limit)).
		Offset(max(offset, 0)).
		Find(&models).Error
	if err != nil {
		return nil, translateError(errors.Wrap(err, "failed to list customers"))
	}

	customers := make([]*entity.Customer, 0, len(models))
	for _, m := range models {
		customers = append(customers, toCustomerDomain(m))
	}

	return customers, nil
}

// RecordOrder increments the aggregate in place, creating the row on first order.
func (repo *customerRepository) RecordOrder(ctx context.Context, order *entity.Order) error {
	lastOrderAt := order.CreatedAt
	m := &model.CustomerModel{
		UID:         order.UserID,
		Email:       order.UserEmail,
		DisplayName: order.UserName,
		OrderCount:  1,
		TotalSpent:  order.Total,
		LastOrderAt: &lastOrderAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.CreatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}},
			DoUpdates: clause.Assignments(map[string]any{
				"order_count":   gorm.Expr("customers.order_count + 1"),
				"total_spent":   gorm.Expr("customers.total_spent + ?", order.Total),
				"last_order_at": gorm.Expr("GREATEST(customers.last_order_at, EXCLUDED.last_order_at)"),
				"updated_at":    order.CreatedAt,
			}),
		}).
		Create(m).Error
	if err != nil {
		return translateError(errors.Wrap(err, "failed to record customer order"))
	}

	return nil
}

func (repo *customerRepository) SetAggregate(ctx context.Context, uid string, aggregate *entity.CustomerAggregate) error {
	result := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).Where("uid = ?", uid).Updates(map[string]any{
		"order_count":   aggregate.Orders,
		"total_spent":   aggregate.TotalSpent,
		"last_order_at": aggregate.LastOrderAt,
		"updated_at":    time.Now().UTC(),
	})
	if result.Error != nil {
		return translateError(errors.Wrap(result.Error, "failed to set customer aggregate"))
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func (repo *customerRepository) SetAdmin(ctx context.Context, uid string, admin bool) error {
	now := time.Now().UTC()
	m := &model.CustomerModel{UID: uid, IsAdmin: admin, CreatedAt: now, UpdatedAt: now}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_admin", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return translateError(errors.Wrap(err, "failed to set admin flag"))
	}

	return nil
}
