package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// ShipOrderCommandHandler records shipments.
type ShipOrderCommandHandler struct {
	updater orderUpdater
}

func NewShipOrderCommandHandler(
	uowFactory OrderUoWFactory,
	observer ports.TransitionObserver,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		updater: newOrderUpdater(uowFactory, observer),
	}
}

// Handle ships the requested quantities and saves the order.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.updater.update(ctx, cmd.OrderID(), func(o *order.Order, _ order.StatusLabels) error {
		return o.Ship(cmd.Lines())
	})
	return err
}
