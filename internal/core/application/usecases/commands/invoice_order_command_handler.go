package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// InvoiceOrderCommandHandler creates invoices for orders.
type InvoiceOrderCommandHandler struct {
	updater orderUpdater
}

// NewInvoiceOrderCommandHandler creates a handler for invoicing operations.
// observer may be nil.
func NewInvoiceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	observer ports.TransitionObserver,
) InvoiceOrderCommandHandler {
	return InvoiceOrderCommandHandler{
		updater: newOrderUpdater(uowFactory, observer),
	}
}

// Handle invoices the order and saves it. A new order moves to processing
// on the same save.
func (h InvoiceOrderCommandHandler) Handle(ctx context.Context, cmd InvoiceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.updater.update(ctx, cmd.OrderID(), func(o *order.Order, _ order.StatusLabels) error {
		_, err := o.Invoice(cmd.InvoiceID(), cmd.Capture())
		return err
	})
	return err
}
