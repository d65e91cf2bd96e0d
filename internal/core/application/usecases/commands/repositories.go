// Package commands contains business operations that modify order state.
// Every command loads the order, applies one domain operation, lets the
// state classifier advance the lifecycle, and persists the result inside a
// single unit of work.
package commands

import (
	"context"

	"sales/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusLabelRepoFactory provides access to the status labels within a transaction.
	StatusLabelRepoFactory interface {
		StatusLabelRepository() ports.StatusLabelRepository
	}

	// OrderUoW manages transactions for order operations. Status labels are
	// read in the same transaction so a save never mixes configurations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   labels, err := uow.StatusLabelRepository().GetDefaultLabels(ctx)
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... mutate, classify, update
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StatusLabelRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
