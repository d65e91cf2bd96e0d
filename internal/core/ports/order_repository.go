// Package ports defines the contracts between the sales order core and its
// infrastructure: repositories and transition observers.
package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their items and invoices.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and invoices.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's state, status, totals, item counters and
	// invoices. New invoices are inserted, existing ones updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetIDsInStates lists the identifiers of the orders whose state is one
	// of states, in ascending order.
	GetIDsInStates(ctx context.Context, states ...order.State) ([]kernel.UUID, error)
}
