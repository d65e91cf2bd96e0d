package commands

import (
	"errors"

	"sales/internal/pkg/guard"
)

// ReclassifyOrdersCommand re-runs the state classifier over every order that
// can still advance automatically: new, processing and complete.
//
// Example:
//
//	cmd := NewReclassifyOrdersCommand()
//	handler := NewReclassifyOrdersCommandHandler(uowFactory, observer)
//
//	changed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("reclassification failed: %w", err)
//	}
type ReclassifyOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrReclassifyOrdersCommandIsNotConstructed = errors.New(
		"ReclassifyOrdersCommand must be created via NewReclassifyOrdersCommand constructor",
	)
)

// NewReclassifyOrdersCommand creates a parameterless batch command.
func NewReclassifyOrdersCommand() ReclassifyOrdersCommand {
	return ReclassifyOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReclassifyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReclassifyOrdersCommandIsNotConstructed)
}
