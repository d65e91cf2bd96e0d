package commands

import (
	"context"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"
)

// orderMutation applies one domain operation to a loaded order. labels are
// the default status labels read in the same transaction.
type orderMutation func(o *order.Order, labels order.StatusLabels) error

// orderUpdater runs the save cycle shared by all order commands:
// load, mutate, classify, apply, update, commit, observe.
type orderUpdater struct {
	uowFactory OrderUoWFactory
	observer   ports.TransitionObserver
}

func newOrderUpdater(uowFactory OrderUoWFactory, observer ports.TransitionObserver) orderUpdater {
	return orderUpdater{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

func (u orderUpdater) update(
	ctx context.Context,
	orderID kernel.UUID,
	mutate orderMutation,
) (services.ClassificationResult, error) {
	return u.save(ctx, orderID, mutate, true)
}

// reclassify classifies the stored order and writes it only when the
// classifier changed its state or status.
func (u orderUpdater) reclassify(ctx context.Context, orderID kernel.UUID) (services.ClassificationResult, error) {
	return u.save(ctx, orderID, nil, false)
}

func (u orderUpdater) save(
	ctx context.Context,
	orderID kernel.UUID,
	mutate orderMutation,
	writeUnchanged bool,
) (services.ClassificationResult, error) {
	uow := u.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ClassificationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	labels, err := uow.StatusLabelRepository().GetDefaultLabels(ctx)
	if err != nil {
		return services.ClassificationResult{}, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return services.ClassificationResult{}, err
	}

	if mutate != nil {
		if err = mutate(o, labels); err != nil {
			return services.ClassificationResult{}, err
		}
	}

	from := o.State()
	result, err := classify(o, labels)
	if err != nil {
		return services.ClassificationResult{}, err
	}

	if !writeUnchanged && !result.Changed {
		return result, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return services.ClassificationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ClassificationResult{}, err
	}

	u.observe(from, result)
	return result, nil
}

func (u orderUpdater) observe(from order.State, result services.ClassificationResult) {
	if u.observer != nil && result.Changed && from != result.State {
		u.observer.ObserveTransition(from, result.State)
	}
}

// classify runs the state classifier on o and applies a changed result.
func classify(o *order.Order, labels order.StatusLabels) (services.ClassificationResult, error) {
	result, err := services.NewStateClassifier(labels).Classify(o.Snapshot())
	if err != nil {
		return services.ClassificationResult{}, fmt.Errorf("classify order %s: %w", o.ID(), err)
	}

	if result.Changed {
		if err = o.ChangeState(result.State, result.Status); err != nil {
			return services.ClassificationResult{}, err
		}
	}

	return result, nil
}
