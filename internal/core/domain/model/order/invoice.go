package order

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via RestoreInvoice constructor")

// InvoiceState is the payment state of an invoice.
type InvoiceState int

const (
	InvoiceStateUnknown InvoiceState = iota
	InvoiceStateOpen
	InvoiceStatePaid
	InvoiceStateCanceled
)

// Validate rejects InvoiceStateUnknown and values outside the known states.
func (s InvoiceState) Validate() error {
	if s < InvoiceStateOpen || s > InvoiceStateCanceled {
		return errs.NewValueIsInvalidErrorWithCause("invoice state", fmt.Errorf("%d is not a valid invoice state", int(s)))
	}
	return nil
}

// String returns the lowercase name of the state, or "unknown".
func (s InvoiceState) String() string {
	switch s {
	case InvoiceStateOpen:
		return "open"
	case InvoiceStatePaid:
		return "paid"
	case InvoiceStateCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Invoice bills part or all of an order. An open invoice has been issued
// but not paid.
type Invoice struct {
	id         kernel.UUID
	state      InvoiceState
	grandTotal decimal.Decimal

	isConstructed bool
}

// RestoreInvoice rebuilds an invoice from persistence. New invoices are
// issued by Order.Invoice.
func RestoreInvoice(id kernel.UUID, state InvoiceState, grandTotal decimal.Decimal) (*Invoice, error) {
	if err := errors.Join(
		id.Validate(),
		state.Validate(),
		validatePrice(grandTotal),
	); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		state:         state,
		grandTotal:    grandTotal,
		isConstructed: true,
	}, nil
}

// Validate ensures the invoice was built by RestoreInvoice or Order.Invoice.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// State returns the payment state.
func (i *Invoice) State() InvoiceState {
	return i.state
}

// GrandTotal returns the billed amount.
func (i *Invoice) GrandTotal() decimal.Decimal {
	return i.grandTotal
}

// IsOpen reports whether the invoice still waits for payment.
func (i *Invoice) IsOpen() bool {
	return i.state == InvoiceStateOpen
}

func (i *Invoice) pay() error {
	if !i.IsOpen() {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoice state",
			fmt.Errorf("invoice %s is %s, only open invoices can be paid", i.id, i.state),
		)
	}
	i.state = InvoiceStatePaid
	return nil
}
