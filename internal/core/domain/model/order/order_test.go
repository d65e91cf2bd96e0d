package order_test

import (
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, sku string, productType order.ProductType, price int64, qty int) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), sku, productType, decimal.NewFromInt(price), qty)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), items, "pending")
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("should create a line with empty counters", func(t *testing.T) {
		item := newItem(t, "MUG-01", order.ProductTypeSimple, 12, 3)

		require.NoError(t, item.Validate())
		assert.Equal(t, "MUG-01", item.SKU())
		assert.Equal(t, order.ItemQuantities{Ordered: 3}, item.Quantities())
		assert.True(t, decimal.NewFromInt(36).Equal(item.RowTotal()))
		assert.Equal(t, 3, item.QtyToInvoice())
		assert.Equal(t, 3, item.QtyToShip())
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		var noID kernel.UUID

		item, err := order.NewItem(noID, "", "gift", decimal.NewFromInt(-1), 0)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "sku")
		assert.Contains(t, err.Error(), "product type")
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "qty ordered")
	})

	t.Run("restore should reject counters above the ordered quantity", func(t *testing.T) {
		_, err := order.RestoreItem(kernel.NewUUID(), "MUG-01", order.ProductTypeSimple, decimal.NewFromInt(1),
			order.ItemQuantities{Ordered: 2, Shipped: 3})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("virtual lines have nothing to ship", func(t *testing.T) {
		item := newItem(t, "EBOOK", order.ProductTypeDownloadable, 5, 2)

		assert.Zero(t, item.QtyToShip())
	})

	t.Run("refunds reduce qty to ship only beyond shipped units", func(t *testing.T) {
		item, err := order.RestoreItem(kernel.NewUUID(), "MUG-01", order.ProductTypeSimple, decimal.NewFromInt(1),
			order.ItemQuantities{Ordered: 10, Invoiced: 10, Shipped: 4, Refunded: 6})
		require.NoError(t, err)

		assert.Equal(t, 4, item.QtyToShip())
		assert.Equal(t, 4, item.QtyToRefund())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a new order", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []*order.Item{newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2)}

		o, err := order.NewOrder(id, items, "pending")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.StateNew, o.State())
		assert.Equal(t, "pending", o.Status())
		assert.True(t, decimal.NewFromInt(20).Equal(o.GrandTotal()))
		assert.True(t, decimal.NewFromInt(20).Equal(o.TotalDue()))
		assert.False(t, o.IsInProcess())
		assert.Empty(t, o.Invoices())
	})

	t.Run("should require items and a status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), nil, "")

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("should reject a line listed twice", func(t *testing.T) {
		item := newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2)

		_, err := order.NewOrder(kernel.NewUUID(), []*order.Item{item, item}, "pending")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("restore should reject refunds above payments", func(t *testing.T) {
		items := []*order.Item{newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2)}

		_, err := order.RestoreOrder(kernel.NewUUID(), order.StateProcessing, "processing", items, nil,
			order.Payments{Paid: decimal.NewFromInt(5), Refunded: decimal.NewFromInt(6)}, order.Hold{})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Invoice(t *testing.T) {
	t.Run("capture pays the invoice and marks the order in process", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))

		invoice, err := o.Invoice(kernel.NewUUID(), true)

		require.NoError(t, err)
		assert.Equal(t, order.InvoiceStatePaid, invoice.State())
		assert.True(t, decimal.NewFromInt(20).Equal(invoice.GrandTotal()))
		assert.True(t, decimal.NewFromInt(20).Equal(o.TotalPaid()))
		assert.True(t, o.TotalDue().IsZero())
		assert.True(t, o.IsInProcess())
		assert.False(t, o.CanInvoice())
		assert.True(t, o.CanCreditmemo())
	})

	t.Run("without capture the invoice stays open until paid", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))

		invoice, err := o.Invoice(kernel.NewUUID(), false)
		require.NoError(t, err)

		assert.True(t, invoice.IsOpen())
		assert.True(t, o.Snapshot().HasOpenInvoices())
		assert.True(t, decimal.NewFromInt(20).Equal(o.TotalDue()))

		require.NoError(t, o.PayInvoice(invoice.ID()))
		assert.False(t, o.Snapshot().HasOpenInvoices())
		assert.True(t, o.TotalDue().IsZero())
	})

	t.Run("paying twice is rejected", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))
		invoice, _ := o.Invoice(kernel.NewUUID(), true)

		require.ErrorIs(t, o.PayInvoice(invoice.ID()), errs.ErrValueIsInvalid)
	})

	t.Run("paying an unknown invoice is not found", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))

		require.ErrorIs(t, o.PayInvoice(kernel.NewUUID()), errs.ErrObjectNotFound)
	})

	t.Run("nothing left to invoice is rejected", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))
		_, _ = o.Invoice(kernel.NewUUID(), true)

		_, err := o.Invoice(kernel.NewUUID(), true)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Ship(t *testing.T) {
	t.Run("shipping everything clears CanShip", func(t *testing.T) {
		item := newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2)
		o := newOrder(t, item)

		require.NoError(t, o.Ship([]order.ItemQty{{ItemID: item.ID(), Qty: 2}}))

		assert.Equal(t, 2, item.QtyShipped())
		assert.False(t, o.CanShip())
		assert.True(t, o.IsInProcess())
	})

	t.Run("over shipping is rejected and changes nothing", func(t *testing.T) {
		first := newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2)
		second := newItem(t, "CUP-01", order.ProductTypeSimple, 5, 1)
		o := newOrder(t, first, second)

		err := o.Ship([]order.ItemQty{
			{ItemID: first.ID(), Qty: 1},
			{ItemID: second.ID(), Qty: 1},
			{ItemID: first.ID(), Qty: 2},
		})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Zero(t, first.QtyShipped())
		assert.Zero(t, second.QtyShipped())
		assert.False(t, o.IsInProcess())
	})

	t.Run("unknown line is not found", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))

		err := o.Ship([]order.ItemQty{{ItemID: kernel.NewUUID(), Qty: 1}})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("virtual orders cannot ship", func(t *testing.T) {
		item := newItem(t, "EBOOK", order.ProductTypeVirtual, 5, 1)
		o := newOrder(t, item)

		assert.True(t, o.IsVirtual())
		require.ErrorIs(t, o.Ship([]order.ItemQty{{ItemID: item.ID(), Qty: 1}}), errs.ErrValueIsInvalid)
	})

	t.Run("empty shipment is rejected", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))

		require.ErrorIs(t, o.Ship(nil), errs.ErrValueIsRequired)
	})
}

func TestOrder_Refund(t *testing.T) {
	t.Run("refund needs captured money", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))

		require.False(t, o.CanCreditmemo())
		require.ErrorIs(t, o.Refund(nil, decimal.NewFromInt(1)), errs.ErrValueIsInvalid)
	})

	t.Run("partial refund keeps a stale qty to ship", func(t *testing.T) {
		// Given: 10 invoiced and paid, 4 shipped
		item := newItem(t, "MUG-01", order.ProductTypeSimple, 1, 10)
		o := newOrder(t, item)
		_, err := o.Invoice(kernel.NewUUID(), true)
		require.NoError(t, err)
		require.NoError(t, o.Ship([]order.ItemQty{{ItemID: item.ID(), Qty: 4}}))

		// When: the 6 remaining units are refunded
		err = o.Refund([]order.ItemQty{{ItemID: item.ID(), Qty: 6}}, decimal.NewFromInt(6))

		// Then
		require.NoError(t, err)
		assert.Equal(t, 6, item.QtyRefunded())
		assert.True(t, decimal.NewFromInt(6).Equal(o.TotalRefunded()))
		assert.True(t, o.CanShip(), "ordered - max(shipped, refunded) still reports 4 units")
		assert.True(t, o.CanCreditmemo())
	})

	t.Run("full refund clears CanCreditmemo", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))
		_, _ = o.Invoice(kernel.NewUUID(), true)

		require.NoError(t, o.Refund(nil, decimal.NewFromInt(20)))

		assert.False(t, o.CanCreditmemo())
	})

	t.Run("amount above the refundable total is rejected", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))
		_, _ = o.Invoice(kernel.NewUUID(), true)

		require.ErrorIs(t, o.Refund(nil, decimal.NewFromInt(21)), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, o.Refund(nil, decimal.Zero), errs.ErrValueIsOutOfRange)
	})

	t.Run("quantity above the invoiced quantity is rejected", func(t *testing.T) {
		item := newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2)
		o := newOrder(t, item)
		_, _ = o.Invoice(kernel.NewUUID(), true)

		err := o.Refund([]order.ItemQty{{ItemID: item.ID(), Qty: 3}}, decimal.NewFromInt(10))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, o.TotalRefunded().IsZero())
	})
}

func TestOrder_HoldAndUnhold(t *testing.T) {
	t.Run("unhold restores the pair before hold", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))

		require.NoError(t, o.Hold("holded"))
		assert.Equal(t, order.StateHolded, o.State())
		assert.True(t, o.CanUnhold())
		assert.False(t, o.CanInvoice())
		assert.False(t, o.CanShip())
		assert.Equal(t, order.Hold{State: order.StateNew, Status: "pending"}, o.HoldBefore())

		require.NoError(t, o.Unhold())
		assert.Equal(t, order.StateNew, o.State())
		assert.Equal(t, "pending", o.Status())
		assert.Equal(t, order.Hold{}, o.HoldBefore())
	})

	t.Run("hold twice is rejected", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))
		require.NoError(t, o.Hold("holded"))

		require.ErrorIs(t, o.Hold("holded"), errs.ErrValueIsInvalid)
	})

	t.Run("unhold without hold is rejected", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))

		require.ErrorIs(t, o.Unhold(), errs.ErrValueIsInvalid)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancel cancels the remaining quantities", func(t *testing.T) {
		item := newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2)
		o := newOrder(t, item)

		require.NoError(t, o.Cancel("canceled"))

		assert.True(t, o.IsCanceled())
		assert.Equal(t, "canceled", o.Status())
		assert.Equal(t, 2, item.QtyCanceled())
		assert.False(t, o.CanInvoice())
		assert.False(t, o.CanShip())
	})

	t.Run("invoiced orders cannot be canceled", func(t *testing.T) {
		o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))
		_, _ = o.Invoice(kernel.NewUUID(), false)

		require.ErrorIs(t, o.Cancel("canceled"), errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeState(t *testing.T) {
	o := newOrder(t, newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2))

	require.NoError(t, o.ChangeState(order.StateComplete, "complete"))
	assert.Equal(t, order.StateComplete, o.State())
	assert.Equal(t, "complete", o.Status())

	require.ErrorIs(t, o.ChangeState("shipped", "shipped"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, o.ChangeState(order.StateClosed, ""), errs.ErrValueIsRequired)
	assert.Equal(t, order.StateComplete, o.State())
}

func TestOrder_Snapshot(t *testing.T) {
	simpleItem := newItem(t, "MUG-01", order.ProductTypeSimple, 10, 2)
	bundleItem := newItem(t, "SET-01", order.ProductTypeBundle, 0, 1)
	o := newOrder(t, simpleItem, bundleItem)
	_, err := o.Invoice(kernel.NewUUID(), false)
	require.NoError(t, err)

	snapshot := o.Snapshot()

	assert.Equal(t, order.StateNew, snapshot.State)
	assert.Equal(t, "pending", snapshot.Status)
	assert.True(t, snapshot.IsInProcess)
	assert.False(t, snapshot.CanInvoice)
	assert.True(t, snapshot.CanShip)
	assert.False(t, snapshot.CanCreditmemo)
	assert.False(t, snapshot.IsVirtual)
	assert.True(t, snapshot.IsNotVirtual())
	assert.True(t, decimal.NewFromInt(20).Equal(snapshot.TotalDue))
	assert.Equal(t, []order.InvoiceState{order.InvoiceStateOpen}, snapshot.Invoices)
	assert.Equal(t, []order.SnapshotItem{
		{ProductType: order.ProductTypeSimple, QtyOrdered: 2},
		{ProductType: order.ProductTypeBundle, QtyOrdered: 1},
	}, snapshot.Items)
}
