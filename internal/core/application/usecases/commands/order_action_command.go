package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrOrderActionCommandIsNotConstructed = errors.New(
	"OrderActionCommand must be created via NewOrderActionCommand constructor",
)

// OrderAction is a manual lifecycle action taken by an operator.
type OrderAction string

const (
	OrderActionHold   OrderAction = "hold"
	OrderActionUnhold OrderAction = "unhold"
	OrderActionCancel OrderAction = "cancel"
)

func (a OrderAction) Validate() error {
	switch a {
	case OrderActionHold, OrderActionUnhold, OrderActionCancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", errors.New(string(a)))
	}
}

// OrderActionCommand holds, releases or cancels an order.
type OrderActionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  OrderAction

	guard guard.ConstructorGuard
}

func NewOrderActionCommand(orderID kernel.UUID, action OrderAction) (OrderActionCommand, error) {
	if err := errors.Join(orderID.Validate(), action.Validate()); err != nil {
		return OrderActionCommand{}, err
	}

	return OrderActionCommand{
		orderID: orderID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OrderActionCommand) Validate() error {
	return c.guard.Validate(ErrOrderActionCommandIsNotConstructed)
}

func (c OrderActionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c OrderActionCommand) Action() OrderAction {
	return c.action
}
