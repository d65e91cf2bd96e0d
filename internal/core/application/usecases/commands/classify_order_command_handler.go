package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"
)

// ClassifyOrderCommandHandler saves an order unchanged so the classifier
// can catch up with configuration or data fixed outside the service.
type ClassifyOrderCommandHandler struct {
	updater orderUpdater
}

func NewClassifyOrderCommandHandler(
	uowFactory OrderUoWFactory,
	observer ports.TransitionObserver,
) ClassifyOrderCommandHandler {
	return ClassifyOrderCommandHandler{
		updater: newOrderUpdater(uowFactory, observer),
	}
}

// Handle returns the classification that was applied.
func (h ClassifyOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ClassifyOrderCommand,
) (services.ClassificationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ClassificationResult{}, err
	}

	return h.updater.update(ctx, cmd.OrderID(), func(*order.Order, order.StatusLabels) error {
		return nil
	})
}
