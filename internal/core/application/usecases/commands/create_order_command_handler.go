package commands

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places new orders in state new with the
// configured default status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the order lines, creates the aggregate, runs the state
// classifier like every other save, and persists the order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildItems(cmd.Lines())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	labels, err := uow.StatusLabelRepository().GetDefaultLabels(ctx)
	if err != nil {
		return err
	}

	newStatus, err := labels.DefaultStatus(order.StateNew)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), items, newStatus)
	if err != nil {
		return err
	}

	if _, err = classify(o, labels); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildItems(lines []OrderLine) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(lines))
	var problems []error

	for _, line := range lines {
		item, err := order.NewItem(kernel.NewUUID(), line.SKU, line.ProductType, line.Price, line.Qty)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return items, nil
}
