package ports

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// StatusLabelRepository reads the configured default status label per state.
type StatusLabelRepository interface {
	// GetDefaultLabels returns the default label of every configured state.
	GetDefaultLabels(ctx context.Context) (order.StatusLabels, error)

	// EnsureDefaults stores labels for the states that have no default yet.
	// Existing defaults are left untouched.
	EnsureDefaults(ctx context.Context, labels order.StatusLabels) error
}
