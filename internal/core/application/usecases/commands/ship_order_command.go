package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand ships the given quantities of order items.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []order.ItemQty

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a shipment command.
// At least one line is required; quantities are checked by the order.
func NewShipOrderCommand(orderID kernel.UUID, lines []order.ItemQty) (ShipOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), validateItemLines(lines)); err != nil {
		return ShipOrderCommand{}, err
	}

	return ShipOrderCommand{
		orderID: orderID,
		lines:   append([]order.ItemQty(nil), lines...),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ShipOrderCommand) Lines() []order.ItemQty {
	return append([]order.ItemQty(nil), c.lines...)
}

func validateItemLines(lines []order.ItemQty) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	var problems []error
	for _, line := range lines {
		problems = append(problems, line.ItemID.Validate())
	}
	return errors.Join(problems...)
}
