package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// PayInvoiceCommandHandler marks invoices as paid.
type PayInvoiceCommandHandler struct {
	updater orderUpdater
}

func NewPayInvoiceCommandHandler(
	uowFactory OrderUoWFactory,
	observer ports.TransitionObserver,
) PayInvoiceCommandHandler {
	return PayInvoiceCommandHandler{
		updater: newOrderUpdater(uowFactory, observer),
	}
}

// Handle pays the invoice. Paying the last open invoice of a shipped order
// lets the classifier complete it.
func (h PayInvoiceCommandHandler) Handle(ctx context.Context, cmd PayInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.updater.update(ctx, cmd.OrderID(), func(o *order.Order, _ order.StatusLabels) error {
		return o.PayInvoice(cmd.InvoiceID())
	})
	return err
}
