package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// RefundOrderCommandHandler records credit memos.
type RefundOrderCommandHandler struct {
	updater orderUpdater
}

func NewRefundOrderCommandHandler(
	uowFactory OrderUoWFactory,
	observer ports.TransitionObserver,
) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		updater: newOrderUpdater(uowFactory, observer),
	}
}

// Handle refunds the order. A fully refunded order is closed by the classifier.
func (h RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.updater.update(ctx, cmd.OrderID(), func(o *order.Order, _ order.StatusLabels) error {
		return o.Refund(cmd.Lines(), cmd.Amount())
	})
	return err
}
