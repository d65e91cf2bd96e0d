package commands

import (
	"context"
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// reclassifiableStates are the states the classifier may still move an order out of.
var reclassifiableStates = []order.State{
	order.StateNew,
	order.StateProcessing,
	order.StateComplete,
}

// ReclassifyOrdersCommandHandler advances every order the classifier would
// move on its next save. Each order is loaded and saved in its own unit of
// work, so one broken order does not hold back the rest.
type ReclassifyOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	updater    orderUpdater
}

// NewReclassifyOrdersCommandHandler creates the batch handler. observer may be nil.
func NewReclassifyOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	observer ports.TransitionObserver,
) ReclassifyOrdersCommandHandler {
	return ReclassifyOrdersCommandHandler{
		uowFactory: uowFactory,
		updater:    newOrderUpdater(uowFactory, observer),
	}
}

// Handle returns the number of orders whose state or status changed.
// Unchanged orders are not written. Orders that fail to load, classify or
// save are skipped and reported together in the returned error; the count
// still includes the orders that were saved.
func (h *ReclassifyOrdersCommandHandler) Handle(ctx context.Context, cmd ReclassifyOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids, err := h.listCandidates(ctx)
	if err != nil {
		return 0, err
	}

	var problems []error
	changed := 0
	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			problems = append(problems, err)
			break
		}

		result, reclassifyErr := h.updater.reclassify(ctx, id)
		if reclassifyErr != nil {
			problems = append(problems, fmt.Errorf("reclassify order %s: %w", id, reclassifyErr))
			continue
		}
		if result.Changed {
			changed++
		}
	}

	return changed, errors.Join(problems...)
}

func (h *ReclassifyOrdersCommandHandler) listCandidates(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetIDsInStates(ctx, reclassifiableStates...)
}
