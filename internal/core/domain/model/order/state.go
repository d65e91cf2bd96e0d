package order

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// State is the coarse-grained lifecycle state of a sales order. It drives
// downstream workflow, while the human-facing status label is configured
// per state (see StatusLabels).
//
// Typical lifecycle:
//
//	new ──> processing ──┬──> complete ──> closed
//	 │          │        └──────────────> closed
//	 │          └──> holded ──> (state before hold)
//	 └──> canceled
//
// The zero value is the unset state. It is never valid on an aggregate but
// may appear in a Snapshot built by callers outside the aggregate.
type State string

const (
	// StateNew is the initial state of a placed order.
	StateNew State = "new"

	// StatePendingPayment waits for an external payment confirmation.
	StatePendingPayment State = "pending_payment"

	// StateProcessing means invoicing or shipping has started.
	StateProcessing State = "processing"

	// StateComplete means everything was invoiced and shipped.
	StateComplete State = "complete"

	// StateClosed means nothing is left to ship or to refund.
	StateClosed State = "closed"

	// StateCanceled is final.
	StateCanceled State = "canceled"

	// StateHolded suspends the order until it is released.
	StateHolded State = "holded"

	// StatePaymentReview blocks the order while a payment is reviewed.
	StatePaymentReview State = "payment_review"
)

// States returns every valid lifecycle state in workflow order.
func States() []State {
	return []State{
		StateNew,
		StatePendingPayment,
		StateProcessing,
		StateComplete,
		StateClosed,
		StateCanceled,
		StateHolded,
		StatePaymentReview,
	}
}

// Validate checks that s is one of the states returned by States.
//
// Returns:
//   - nil if the state is valid
//   - errs.ValueIsInvalidError for the unset state or any other value
func (s State) Validate() error {
	if !s.IsOneOf(States()...) {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", string(s)))
	}
	return nil
}

// IsOneOf reports whether s equals any of the given states.
func (s State) IsOneOf(states ...State) bool {
	for _, candidate := range states {
		if s == candidate {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}
