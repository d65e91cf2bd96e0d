package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// OrderActionCommandHandler applies hold, unhold and cancel.
type OrderActionCommandHandler struct {
	updater orderUpdater
}

func NewOrderActionCommandHandler(
	uowFactory OrderUoWFactory,
	observer ports.TransitionObserver,
) OrderActionCommandHandler {
	return OrderActionCommandHandler{
		updater: newOrderUpdater(uowFactory, observer),
	}
}

// Handle applies the action. Hold and cancel use the configured default
// status of their target state; unhold restores the pair saved by hold.
func (h OrderActionCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.updater.update(ctx, cmd.OrderID(), func(o *order.Order, labels order.StatusLabels) error {
		switch cmd.Action() {
		case OrderActionHold:
			status, err := labels.DefaultStatus(order.StateHolded)
			if err != nil {
				return err
			}
			return o.Hold(status)
		case OrderActionUnhold:
			return o.Unhold()
		default:
			status, err := labels.DefaultStatus(order.StateCanceled)
			if err != nil {
				return err
			}
			return o.Cancel(status)
		}
	})
	return err
}
