package ports

import "sales/internal/core/domain/model/order"

// TransitionObserver is told about every automatic state change after it
// was committed.
type TransitionObserver interface {
	ObserveTransition(from, to order.State)
}
