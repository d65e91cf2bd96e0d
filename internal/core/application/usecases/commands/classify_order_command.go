package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrClassifyOrderCommandIsNotConstructed = errors.New(
	"ClassifyOrderCommand must be created via NewClassifyOrderCommand constructor",
)

// ClassifyOrderCommand re-evaluates the lifecycle state of one order
// without changing anything else.
type ClassifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClassifyOrderCommand(orderID kernel.UUID) (ClassifyOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ClassifyOrderCommand{}, err
	}

	return ClassifyOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClassifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrClassifyOrderCommandIsNotConstructed)
}

func (c ClassifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
