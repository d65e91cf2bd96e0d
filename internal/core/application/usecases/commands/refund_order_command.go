package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand issues a credit memo: item quantities returned and the
// amount paid back.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []order.ItemQty
	amount  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a refund command. The amount must be positive.
func NewRefundOrderCommand(
	orderID kernel.UUID,
	lines []order.ItemQty,
	amount decimal.Decimal,
) (RefundOrderCommand, error) {
	var amountErr error
	if !amount.IsPositive() {
		amountErr = errs.NewValueIsInvalidError("amount")
	}

	if err := errors.Join(orderID.Validate(), validateItemLines(lines), amountErr); err != nil {
		return RefundOrderCommand{}, err
	}

	return RefundOrderCommand{
		orderID: orderID,
		lines:   append([]order.ItemQty(nil), lines...),
		amount:  amount,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RefundOrderCommand) Lines() []order.ItemQty {
	return append([]order.ItemQty(nil), c.lines...)
}

func (c RefundOrderCommand) Amount() decimal.Decimal {
	return c.amount
}
