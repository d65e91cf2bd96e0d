package order

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the sales order aggregate root. It owns its lines and invoices,
// keeps the paid and refunded totals, and answers the capability queries
// (CanShip, CanInvoice, CanCreditmemo, ...) from those totals.
//
// Order follows these invariants:
//   - Must have a valid identifier and at least one line
//   - Lifecycle state is always one of States() and always has a status label
//   - Total paid never exceeds the grand total; total refunded never exceeds total paid
//   - Can only be created through NewOrder or RestoreOrder
//
// Operations that move fulfillment or money forward (Invoice, PayInvoice,
// Ship, Refund) mark the loaded instance as "in process". The flag is not
// persisted: it only tells the state classifier, during the same save, that
// a new order has started processing.
type Order struct {
	id       kernel.UUID
	state    State
	status   string
	items    []*Item
	invoices []*Invoice

	totalPaid     decimal.Decimal
	totalRefunded decimal.Decimal

	// hold keeps the pair to restore on Unhold
	holdBeforeState  State
	holdBeforeStatus string

	inProcess     bool
	isConstructed bool
}

// NewOrder places a new order in StateNew.
//
// Parameters:
//   - id: Unique identifier for the order
//   - items: Order lines, at least one
//   - newStatus: The status label configured as default for StateNew
//
// Example:
//
//	labels := order.DefaultStatusLabels()
//	pending, _ := labels.DefaultStatus(order.StateNew)
//	o, err := order.NewOrder(kernel.NewUUID(), items, pending)
func NewOrder(id kernel.UUID, items []*Item, newStatus string) (*Order, error) {
	return RestoreOrder(id, StateNew, newStatus, items, nil, Payments{}, Hold{})
}

// Payments holds the money totals persisted with an order.
type Payments struct {
	Paid     decimal.Decimal
	Refunded decimal.Decimal
}

// Hold holds the state and status an order had before it was put on hold.
type Hold struct {
	State  State
	Status string
}

// RestoreOrder rebuilds an order from persistence and checks its invariants.
func RestoreOrder(
	id kernel.UUID,
	state State,
	status string,
	items []*Item,
	invoices []*Invoice,
	payments Payments,
	hold Hold,
) (*Order, error) {
	o := &Order{
		id:               id,
		state:            state,
		status:           status,
		items:            items,
		invoices:         invoices,
		totalPaid:        payments.Paid,
		totalRefunded:    payments.Refunded,
		holdBeforeState:  hold.State,
		holdBeforeStatus: hold.Status,
		isConstructed:    true,
	}

	if err := errors.Join(
		id.Validate(),
		validateStatePair(state, status),
		o.validateItems(),
		o.validateInvoices(),
	); err != nil {
		return nil, err
	}

	if err := o.validatePayments(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// State returns the lifecycle state.
func (o *Order) State() State {
	return o.state
}

// Status returns the status label.
func (o *Order) Status() string {
	return o.status
}

// Items returns the order lines. The slice must not be modified.
func (o *Order) Items() []*Item {
	return o.items
}

// Invoices returns the invoices issued for the order. The slice must not be modified.
func (o *Order) Invoices() []*Invoice {
	return o.invoices
}

// HoldBefore returns the pair Unhold restores; empty unless the order is on hold.
func (o *Order) HoldBefore() Hold {
	return Hold{State: o.holdBeforeState, Status: o.holdBeforeStatus}
}

// TotalPaid returns the captured amount.
func (o *Order) TotalPaid() decimal.Decimal {
	return o.totalPaid
}

// TotalRefunded returns the amount returned to the customer.
func (o *Order) TotalRefunded() decimal.Decimal {
	return o.totalRefunded
}

// GrandTotal is the sum of all line totals.
func (o *Order) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.RowTotal())
	}
	return total
}

// TotalDue is the amount still owed, never negative.
func (o *Order) TotalDue() decimal.Decimal {
	due := o.GrandTotal().Sub(o.totalPaid)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// IsInProcess reports whether this instance invoiced, shipped, refunded or
// took a payment since it was loaded.
func (o *Order) IsInProcess() bool {
	return o.inProcess
}

// IsVirtual reports whether no line needs a shipment.
func (o *Order) IsVirtual() bool {
	for _, item := range o.items {
		if item.ProductType().IsShippable() {
			return false
		}
	}
	return len(o.items) > 0
}

// IsCanceled reports whether the order is in StateCanceled.
func (o *Order) IsCanceled() bool {
	return o.state == StateCanceled
}

// CanUnhold reports whether the order is on hold.
func (o *Order) CanUnhold() bool {
	return o.state == StateHolded
}

// CanHold reports whether the order may be put on hold.
func (o *Order) CanHold() bool {
	return !o.state.IsOneOf(StateHolded, StateCanceled, StateComplete, StateClosed, StatePaymentReview)
}

// CanInvoice reports whether some quantity is left to invoice and the
// state allows invoicing.
func (o *Order) CanInvoice() bool {
	if o.state.IsOneOf(StateCanceled, StateHolded, StatePaymentReview, StateComplete, StateClosed) {
		return false
	}
	for _, item := range o.items {
		if item.QtyToInvoice() > 0 {
			return true
		}
	}
	return false
}

// CanShip reports whether some shippable quantity is left and the state
// allows shipping. Virtual orders never ship.
func (o *Order) CanShip() bool {
	if o.state.IsOneOf(StateCanceled, StateHolded, StatePaymentReview) || o.IsVirtual() {
		return false
	}
	for _, item := range o.items {
		if item.QtyToShip() > 0 {
			return true
		}
	}
	return false
}

// CanCreditmemo reports whether some captured money is left to refund.
func (o *Order) CanCreditmemo() bool {
	if o.state.IsOneOf(StateCanceled, StateHolded, StatePaymentReview, StateClosed) {
		return false
	}
	return o.totalPaid.Sub(o.totalRefunded).IsPositive()
}

// CanCancel reports whether the order can still be canceled: nothing was
// invoiced and the order is neither final nor blocked.
func (o *Order) CanCancel() bool {
	if o.state.IsOneOf(StateCanceled, StateComplete, StateClosed, StateHolded, StatePaymentReview) {
		return false
	}
	for _, item := range o.items {
		if item.QtyInvoiced() > 0 {
			return false
		}
	}
	return true
}

// Invoice bills every quantity left to invoice in a single invoice.
//
// Parameters:
//   - invoiceID: identifier of the new invoice
//   - capture: when true the invoice is paid immediately, otherwise it stays open
//
// Returns:
//   - *Invoice: the issued invoice
//   - error: errs.ValueIsInvalidError if the order cannot be invoiced
func (o *Order) Invoice(invoiceID kernel.UUID, capture bool) (*Invoice, error) {
	if err := invoiceID.Validate(); err != nil {
		return nil, err
	}
	if !o.CanInvoice() {
		return nil, o.notAllowed("invoice")
	}
	for _, existing := range o.invoices {
		if existing.ID().IsEqual(invoiceID) {
			return nil, errs.NewValueIsInvalidErrorWithCause("invoiceId", fmt.Errorf("invoice %s already exists", invoiceID))
		}
	}

	amount := decimal.Zero
	for _, item := range o.items {
		qty := item.QtyToInvoice()
		if qty == 0 {
			continue
		}
		item.invoice(qty)
		amount = amount.Add(item.Price().Mul(decimal.NewFromInt(int64(qty))))
	}

	invoice := &Invoice{
		id:            invoiceID,
		state:         InvoiceStateOpen,
		grandTotal:    amount,
		isConstructed: true,
	}
	o.invoices = append(o.invoices, invoice)

	if capture {
		if err := o.payInvoice(invoice); err != nil {
			return nil, err
		}
	}

	o.inProcess = true
	return invoice, nil
}

// PayInvoice captures the amount of an open invoice.
//
// Returns:
//   - errs.ObjectNotFoundError if the invoice does not belong to the order
//   - errs.ValueIsInvalidError if the invoice is not open
func (o *Order) PayInvoice(invoiceID kernel.UUID) error {
	for _, invoice := range o.invoices {
		if invoice.ID().IsEqual(invoiceID) {
			if err := o.payInvoice(invoice); err != nil {
				return err
			}
			o.inProcess = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("invoiceId", invoiceID.String())
}

// ItemQty pairs an order line with a quantity for Ship and Refund.
type ItemQty struct {
	ItemID kernel.UUID
	Qty    int
}

// Ship records a shipment of the given quantities. Each quantity must be
// positive and within the line's QtyToShip. Nothing changes on error.
func (o *Order) Ship(lines []ItemQty) error {
	if !o.CanShip() {
		return o.notAllowed("ship")
	}
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("shipment items")
	}

	items, err := o.checkLines(lines, (*Item).QtyToShip, "qty to ship")
	if err != nil {
		return err
	}

	for i, line := range lines {
		if err = items[i].ship(line.Qty); err != nil {
			return err
		}
	}

	o.inProcess = true
	return nil
}

// Refund returns money and, optionally, quantities to the customer. The
// amount must be positive and not exceed what was paid and not yet
// refunded; each quantity must be within the line's QtyToRefund.
func (o *Order) Refund(lines []ItemQty, amount decimal.Decimal) error {
	if !o.CanCreditmemo() {
		return o.notAllowed("refund")
	}

	refundable := o.totalPaid.Sub(o.totalRefunded)
	if !amount.IsPositive() || amount.GreaterThan(refundable) {
		return errs.NewValueIsOutOfRangeError("refund amount", amount, "0.01", refundable)
	}

	items, err := o.checkLines(lines, (*Item).QtyToRefund, "qty to refund")
	if err != nil {
		return err
	}

	for i, line := range lines {
		if err = items[i].refund(line.Qty); err != nil {
			return err
		}
	}

	o.totalRefunded = o.totalRefunded.Add(amount)
	o.inProcess = true
	return nil
}

// Hold suspends the order and remembers the current pair for Unhold.
//
// Parameters:
//   - holdedStatus: the status label configured as default for StateHolded
func (o *Order) Hold(holdedStatus string) error {
	if !o.CanHold() {
		return o.notAllowed("hold")
	}
	if holdedStatus == "" {
		return errs.NewValueIsRequiredError("status")
	}

	o.holdBeforeState, o.holdBeforeStatus = o.state, o.status
	o.state, o.status = StateHolded, holdedStatus
	return nil
}

// Unhold restores the state and status the order had before Hold.
func (o *Order) Unhold() error {
	if !o.CanUnhold() {
		return o.notAllowed("unhold")
	}
	if err := validateStatePair(o.holdBeforeState, o.holdBeforeStatus); err != nil {
		return err
	}

	o.state, o.status = o.holdBeforeState, o.holdBeforeStatus
	o.holdBeforeState, o.holdBeforeStatus = "", ""
	return nil
}

// Cancel cancels every quantity left to invoice and moves the order to
// StateCanceled.
//
// Parameters:
//   - canceledStatus: the status label configured as default for StateCanceled
func (o *Order) Cancel(canceledStatus string) error {
	if !o.CanCancel() {
		return o.notAllowed("cancel")
	}
	if canceledStatus == "" {
		return errs.NewValueIsRequiredError("status")
	}

	for _, item := range o.items {
		item.cancel()
	}
	o.state, o.status = StateCanceled, canceledStatus
	return nil
}

// ChangeState writes a lifecycle state together with its status label.
// The state classifier's result is applied through this method.
func (o *Order) ChangeState(state State, status string) error {
	if err := validateStatePair(state, status); err != nil {
		return err
	}

	o.state, o.status = state, status
	return nil
}

func (o *Order) payInvoice(invoice *Invoice) error {
	if err := invoice.pay(); err != nil {
		return err
	}
	o.totalPaid = o.totalPaid.Add(invoice.GrandTotal())
	return nil
}

// checkLines resolves the lines' items and checks every quantity against
// limit before anything is mutated. Repeated items are checked on their sum.
func (o *Order) checkLines(lines []ItemQty, limit func(*Item) int, param string) ([]*Item, error) {
	items := make([]*Item, len(lines))
	requested := make(map[kernel.UUID]int, len(lines))

	for i, line := range lines {
		item, err := o.item(line.ItemID)
		if err != nil {
			return nil, err
		}
		requested[line.ItemID] += line.Qty
		if line.Qty <= 0 || requested[line.ItemID] > limit(item) {
			return nil, errs.NewValueIsOutOfRangeError(param+" for "+item.SKU(), requested[line.ItemID], 1, limit(item))
		}
		items[i] = item
	}

	return items, nil
}

func (o *Order) item(id kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", id.String())
}

func (o *Order) notAllowed(operation string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("order %s in state %s does not allow %s", o.id, o.state, operation),
	)
}

func (o *Order) validateItems() error {
	if len(o.items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(o.items))
	for _, item := range o.items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %s is listed twice", item.ID()))
		}
		seen[item.ID()] = struct{}{}
	}
	return nil
}

func (o *Order) validateInvoices() error {
	for _, invoice := range o.invoices {
		if err := invoice.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Order) validatePayments() error {
	if o.totalPaid.IsNegative() || o.totalRefunded.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("payments", errors.New("totals must not be negative"))
	}
	if o.totalRefunded.GreaterThan(o.totalPaid) {
		return errs.NewValueIsOutOfRangeError("total refunded", o.totalRefunded, 0, o.totalPaid)
	}
	if o.totalPaid.GreaterThan(o.GrandTotal()) {
		return errs.NewValueIsOutOfRangeError("total paid", o.totalPaid, 0, o.GrandTotal())
	}
	return nil
}

func validateStatePair(state State, status string) error {
	if err := state.Validate(); err != nil {
		return err
	}
	if status == "" {
		return errs.NewValueIsRequiredErrorWithCause("status", fmt.Errorf("state %s needs a status label", state))
	}
	return nil
}
