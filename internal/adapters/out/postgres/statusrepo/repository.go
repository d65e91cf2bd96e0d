package statusrepo

import (
	"context"
	"fmt"

	"sales/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStatusLabelRepository implements StatusLabelRepository using GORM.
type GormStatusLabelRepository struct {
	db *gorm.DB
}

func NewGormStatusLabelRepository(db *gorm.DB) *GormStatusLabelRepository {
	return &GormStatusLabelRepository{db: db}
}

// GetDefaultLabels loads the default label of every state that has one.
// Rows for unknown states are ignored.
func (r *GormStatusLabelRepository) GetDefaultLabels(ctx context.Context) (order.StatusLabels, error) {
	var dtos []StatusStateDTO
	if err := r.db.WithContext(ctx).Where("is_default = ?", true).Order("state").Find(&dtos).Error; err != nil {
		return nil, err
	}

	labels := make(order.StatusLabels, len(dtos))
	for _, dto := range dtos {
		state := order.State(dto.State)
		if state.Validate() != nil {
			continue
		}
		labels[state] = dto.Status
	}

	return labels, nil
}

// EnsureDefaults inserts a default row for every state in labels that has no
// default yet. Configured defaults win over the given labels.
func (r *GormStatusLabelRepository) EnsureDefaults(ctx context.Context, labels order.StatusLabels) error {
	existing, err := r.GetDefaultLabels(ctx)
	if err != nil {
		return err
	}

	missing := make([]StatusStateDTO, 0, len(labels))
	for _, state := range order.States() {
		status, ok := labels[state]
		if !ok || status == "" {
			continue
		}
		if _, configured := existing[state]; configured {
			continue
		}
		missing = append(missing, StatusStateDTO{
			State:     string(state),
			Status:    status,
			IsDefault: true,
		})
	}

	if len(missing) == 0 {
		return nil
	}

	if err = r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&missing).Error; err != nil {
		return fmt.Errorf("seed default status labels: %w", err)
	}
	return nil
}
