// Package order provides the sales order aggregate: lines, invoices, money
// totals, lifecycle state and the capability queries derived from them.
//
// The package includes:
//   - Order: The aggregate root; invoices, ships, refunds, holds and cancels
//   - Item and Invoice: entities owned by the order
//   - State: the lifecycle state (new, processing, complete, closed, ...)
//   - StatusLabels: the default human-facing status per state
//   - Snapshot: the plain data copy consumed by the state classifier
//
// Key business rules:
//   - An order always carries a valid state and a non-empty status label
//   - Quantities only grow and never exceed the ordered quantity
//   - Refunds never exceed what was paid
//   - Capability queries (CanShip, CanInvoice, CanCreditmemo, CanUnhold) are
//     computed from the aggregate's own totals and state
//
// The aggregate does not choose when to advance to processing, complete or
// closed; that decision belongs to services.StateClassifier and is applied
// through ChangeState.
package order
