package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrPayInvoiceCommandIsNotConstructed = errors.New(
	"PayInvoiceCommand must be created via NewPayInvoiceCommand constructor",
)

// PayInvoiceCommand registers the payment of an open invoice.
type PayInvoiceCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPayInvoiceCommand(orderID, invoiceID kernel.UUID) (PayInvoiceCommand, error) {
	if err := errors.Join(orderID.Validate(), invoiceID.Validate()); err != nil {
		return PayInvoiceCommand{}, err
	}

	return PayInvoiceCommand{
		orderID:   orderID,
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PayInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrPayInvoiceCommandIsNotConstructed)
}

func (c PayInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PayInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}
