package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its lines and invoices.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the order row, upserts its lines and invoices.
// Lines and invoices are never removed from an order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"state":              dto.State,
		"status":             dto.Status,
		"total_paid":         dto.TotalPaid,
		"total_refunded":     dto.TotalRefunded,
		"hold_before_state":  dto.HoldBeforeState,
		"hold_before_status": dto.HoldBeforeStatus,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}

	if len(dto.Items) > 0 {
		if err := db.Clauses(upsert).Create(&dto.Items).Error; err != nil {
			return fmt.Errorf("save order items: %w", err)
		}
	}

	if len(dto.Invoices) > 0 {
		if err := db.Clauses(upsert).Create(&dto.Invoices).Error; err != nil {
			return fmt.Errorf("save order invoices: %w", err)
		}
	}

	return nil
}

// Get retrieves an order by ID with its lines and invoices.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withChildren(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetIDsInStates lists the IDs of the orders in one of the given states,
// sorted by ID. Children are not loaded.
func (r *GormOrderRepository) GetIDsInStates(ctx context.Context, states ...order.State) ([]kernel.UUID, error) {
	if len(states) == 0 {
		return []kernel.UUID{}, nil
	}

	names := make([]string, 0, len(states))
	for _, state := range states {
		names = append(names, string(state))
	}

	var rows []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("state IN ?", names).
		Order("id").
		Pluck("id", &rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}

	return r.db.WithContext(ctx).
		Preload("Items", byPosition).
		Preload("Invoices", byPosition)
}
