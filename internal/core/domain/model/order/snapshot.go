package order

import "github.com/shopspring/decimal"

// Snapshot is a read-only copy of the order data the state classifier
// needs: the current state and status, the capability flags, the amount due,
// and per-line quantities and invoice states.
//
// Callers outside the aggregate may fill it directly; nil slices are
// treated as empty.
type Snapshot struct {
	State  State
	Status string

	IsCanceled    bool
	CanUnhold     bool
	CanInvoice    bool
	CanShip       bool
	CanCreditmemo bool
	IsInProcess   bool
	IsVirtual     bool

	TotalDue decimal.Decimal

	Items    []SnapshotItem
	Invoices []InvoiceState
}

// SnapshotItem carries the quantities of one order line.
type SnapshotItem struct {
	ProductType ProductType
	QtyOrdered  int
	QtyShipped  int
	QtyRefunded int
}

// IsNotVirtual is the complement of IsVirtual.
func (s Snapshot) IsNotVirtual() bool {
	return !s.IsVirtual
}

// HasOpenInvoices reports whether an issued invoice is still unpaid.
func (s Snapshot) HasOpenInvoices() bool {
	for _, state := range s.Invoices {
		if state == InvoiceStateOpen {
			return true
		}
	}
	return false
}

// Snapshot copies the aggregate's current values.
func (o *Order) Snapshot() Snapshot {
	items := make([]SnapshotItem, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, SnapshotItem{
			ProductType: item.ProductType(),
			QtyOrdered:  item.QtyOrdered(),
			QtyShipped:  item.QtyShipped(),
			QtyRefunded: item.QtyRefunded(),
		})
	}

	invoices := make([]InvoiceState, 0, len(o.invoices))
	for _, invoice := range o.invoices {
		invoices = append(invoices, invoice.State())
	}

	return Snapshot{
		State:         o.state,
		Status:        o.status,
		IsCanceled:    o.IsCanceled(),
		CanUnhold:     o.CanUnhold(),
		CanInvoice:    o.CanInvoice(),
		CanShip:       o.CanShip(),
		CanCreditmemo: o.CanCreditmemo(),
		IsInProcess:   o.IsInProcess(),
		IsVirtual:     o.IsVirtual(),
		TotalDue:      o.TotalDue(),
		Items:         items,
		Invoices:      invoices,
	}
}
