package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrInvoiceOrderCommandIsNotConstructed = errors.New(
	"InvoiceOrderCommand must be created via NewInvoiceOrderCommand constructor",
)

// InvoiceOrderCommand invoices every remaining quantity of an order.
// When capture is set the invoice is paid immediately.
type InvoiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	invoiceID kernel.UUID
	capture   bool

	guard guard.ConstructorGuard
}

// NewInvoiceOrderCommand creates a command for invoicing an order.
// The invoice identifier is chosen by the caller so it can be returned
// before the order is reloaded.
func NewInvoiceOrderCommand(orderID, invoiceID kernel.UUID, capture bool) (InvoiceOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), invoiceID.Validate()); err != nil {
		return InvoiceOrderCommand{}, err
	}

	return InvoiceOrderCommand{
		orderID:   orderID,
		invoiceID: invoiceID,
		capture:   capture,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c InvoiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrInvoiceOrderCommandIsNotConstructed)
}

func (c InvoiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c InvoiceOrderCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

func (c InvoiceOrderCommand) Capture() bool {
	return c.capture
}
