package services

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/order"
)

// ErrStatusResolverIsRequired is returned by Classify when the classifier was
// built without a status resolver.
var ErrStatusResolverIsRequired = errors.New("state classifier needs a status resolver")

// StatusResolver looks up the default status label of a lifecycle state.
// order.StatusLabels implements it.
type StatusResolver interface {
	DefaultStatus(state order.State) (string, error)
}

// StatusResolverFunc adapts a function to StatusResolver.
type StatusResolverFunc func(state order.State) (string, error)

// DefaultStatus calls f(state).
func (f StatusResolverFunc) DefaultStatus(state order.State) (string, error) {
	return f(state)
}

// ClassificationResult is the state and status an order should be saved
// with. Changed is false when both equal the classified snapshot's values.
type ClassificationResult struct {
	State   order.State
	Status  string
	Changed bool
}

// StateClassifier decides, right before an order is saved, whether it moves
// automatically to processing, complete or closed.
//
// Rules, evaluated in order:
//  1. A new order that is in process becomes processing. The later rules
//     see processing as the current state.
//  2. Nothing else happens while the order is canceled, on hold, still
//     invoiceable, or has an open invoice with a whole unit of money due.
//  3. It becomes closed when processing or complete with nothing left to
//     refund or ship on a non-virtual order, or when a virtual order already
//     carries the "closed" status.
//  4. It becomes complete when processing and either nothing is left to
//     ship or every partially refunded unit is covered by shipments and
//     refunds.
//
// StateClassifier holds no mutable state and is safe for concurrent use.
//
// Example usage:
//
//	classifier := services.NewStateClassifier(order.DefaultStatusLabels())
//	result, err := classifier.Classify(o.Snapshot())
//	if err != nil {
//	    // A status label is missing; do not save the order
//	}
//	if result.Changed {
//	    _ = o.ChangeState(result.State, result.Status)
//	}
type StateClassifier struct {
	resolver StatusResolver
}

// NewStateClassifier creates a classifier resolving labels with resolver.
func NewStateClassifier(resolver StatusResolver) StateClassifier {
	return StateClassifier{resolver: resolver}
}

// Classify returns the state and status the snapshot's order should have.
//
// Parameters:
//   - snapshot: the order's current values; it is not modified
//
// Returns:
//   - ClassificationResult: the final pair, possibly equal to the current one
//   - error: only when a default status label cannot be resolved; no partial
//     result is returned in that case
func (c StateClassifier) Classify(snapshot order.Snapshot) (ClassificationResult, error) {
	if c.resolver == nil {
		return ClassificationResult{}, ErrStatusResolverIsRequired
	}

	result := ClassificationResult{State: snapshot.State, Status: snapshot.Status}

	if c.shouldStartProcessing(snapshot) {
		if err := c.moveTo(&result, order.StateProcessing); err != nil {
			return ClassificationResult{}, err
		}
	}

	if c.isBlocked(snapshot) {
		return c.finish(snapshot, result), nil
	}

	if c.shouldClose(snapshot, result) {
		if err := c.moveTo(&result, order.StateClosed); err != nil {
			return ClassificationResult{}, err
		}
		return c.finish(snapshot, result), nil
	}

	if c.shouldComplete(snapshot, result.State) {
		if err := c.moveTo(&result, order.StateComplete); err != nil {
			return ClassificationResult{}, err
		}
	}

	return c.finish(snapshot, result), nil
}

// IsPartiallyRefundedOrderShipped reports whether every simple unit ordered
// has been shipped or refunded, with at least one unit shipped.
//
// Shipped units are summed over all lines while ordered and refunded units
// only count simple lines. The asymmetry is kept on purpose: composite
// parents report the shipped quantity of their children.
func (c StateClassifier) IsPartiallyRefundedOrderShipped(snapshot order.Snapshot) bool {
	shipped := shippedQty(snapshot.Items)
	return shipped > 0 && qtyToShip(snapshot.Items) <= refundedQty(snapshot.Items)+shipped
}

func (c StateClassifier) shouldStartProcessing(snapshot order.Snapshot) bool {
	return snapshot.State == order.StateNew && snapshot.IsInProcess
}

// isBlocked reports pending hold, cancel or payment obstacles. Total due is
// truncated to whole units before the comparison.
func (c StateClassifier) isBlocked(snapshot order.Snapshot) bool {
	return snapshot.IsCanceled ||
		snapshot.CanUnhold ||
		snapshot.CanInvoice ||
		(snapshot.HasOpenInvoices() && snapshot.TotalDue.IntPart() > 0)
}

// shouldClose reads the working pair: after a promotion the status checked
// for virtual orders is the processing label, not the stored one.
func (c StateClassifier) shouldClose(snapshot order.Snapshot, working ClassificationResult) bool {
	if working.State.IsOneOf(order.StateProcessing, order.StateComplete) &&
		!snapshot.CanCreditmemo &&
		!snapshot.CanShip &&
		snapshot.IsNotVirtual() {
		return true
	}

	return snapshot.IsVirtual && working.Status == string(order.StateClosed)
}

func (c StateClassifier) shouldComplete(snapshot order.Snapshot, currentState order.State) bool {
	return currentState == order.StateProcessing &&
		(!snapshot.CanShip || c.IsPartiallyRefundedOrderShipped(snapshot))
}

func (c StateClassifier) moveTo(result *ClassificationResult, state order.State) error {
	status, err := c.resolver.DefaultStatus(state)
	if err != nil {
		return fmt.Errorf("resolve default status for %s: %w", state, err)
	}
	if status == "" {
		return fmt.Errorf("resolve default status for %s: %w", state, order.ErrDefaultStatusIsNotConfigured)
	}

	result.State = state
	result.Status = status
	return nil
}

func (c StateClassifier) finish(snapshot order.Snapshot, result ClassificationResult) ClassificationResult {
	result.Changed = result.State != snapshot.State || result.Status != snapshot.Status
	return result
}

func qtyToShip(items []order.SnapshotItem) int {
	total := 0
	for _, item := range items {
		if item.ProductType.IsSimple() {
			total += nonNegative(item.QtyOrdered)
		}
	}
	return total
}

func shippedQty(items []order.SnapshotItem) int {
	total := 0
	for _, item := range items {
		total += nonNegative(item.QtyShipped)
	}
	return total
}

func refundedQty(items []order.SnapshotItem) int {
	total := 0
	for _, item := range items {
		if item.ProductType.IsSimple() {
			total += nonNegative(item.QtyRefunded)
		}
	}
	return total
}

func nonNegative(qty int) int {
	return max(qty, 0)
}
