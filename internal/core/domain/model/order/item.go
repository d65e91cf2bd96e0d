package order

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is an order line. Its counters only grow: invoiced, shipped,
// refunded and canceled quantities never exceed the ordered quantity.
type Item struct {
	id          kernel.UUID
	sku         string
	productType ProductType
	price       decimal.Decimal

	qtyOrdered  int
	qtyInvoiced int
	qtyShipped  int
	qtyRefunded int
	qtyCanceled int

	isConstructed bool
}

// NewItem creates a line that has not been invoiced, shipped or refunded yet.
//
// Example:
//
//	item, err := order.NewItem(kernel.NewUUID(), "MUG-01", order.ProductTypeSimple, decimal.NewFromInt(12), 3)
func NewItem(id kernel.UUID, sku string, productType ProductType, price decimal.Decimal, qtyOrdered int) (*Item, error) {
	return RestoreItem(id, sku, productType, price, ItemQuantities{Ordered: qtyOrdered})
}

// ValidateLine checks the values a new line is created from, without
// building the line.
func ValidateLine(sku string, productType ProductType, price decimal.Decimal, qtyOrdered int) error {
	return errors.Join(
		validateSKU(sku),
		productType.Validate(),
		validatePrice(price),
		validateQuantities(ItemQuantities{Ordered: qtyOrdered}),
	)
}

// ItemQuantities groups the counters of an order line.
type ItemQuantities struct {
	Ordered  int
	Invoiced int
	Shipped  int
	Refunded int
	Canceled int
}

// RestoreItem rebuilds a line from persistence.
func RestoreItem(
	id kernel.UUID,
	sku string,
	productType ProductType,
	price decimal.Decimal,
	qty ItemQuantities,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		validateSKU(sku),
		productType.Validate(),
		validatePrice(price),
		validateQuantities(qty),
	); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		sku:           sku,
		productType:   productType,
		price:         price,
		qtyOrdered:    qty.Ordered,
		qtyInvoiced:   qty.Invoiced,
		qtyShipped:    qty.Shipped,
		qtyRefunded:   qty.Refunded,
		qtyCanceled:   qty.Canceled,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was built by NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the stock keeping unit of the ordered product.
func (i *Item) SKU() string {
	return i.sku
}

// ProductType returns the catalog type of the ordered product.
func (i *Item) ProductType() ProductType {
	return i.productType
}

// Price returns the unit price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// QtyOrdered returns the ordered quantity.
func (i *Item) QtyOrdered() int {
	return i.qtyOrdered
}

// QtyInvoiced returns the quantity billed so far.
func (i *Item) QtyInvoiced() int {
	return i.qtyInvoiced
}

// QtyShipped returns the quantity shipped so far.
func (i *Item) QtyShipped() int {
	return i.qtyShipped
}

// QtyRefunded returns the quantity refunded so far.
func (i *Item) QtyRefunded() int {
	return i.qtyRefunded
}

// QtyCanceled returns the quantity canceled before it was invoiced.
func (i *Item) QtyCanceled() int {
	return i.qtyCanceled
}

// Quantities returns all counters of the line at once.
func (i *Item) Quantities() ItemQuantities {
	return ItemQuantities{
		Ordered:  i.qtyOrdered,
		Invoiced: i.qtyInvoiced,
		Shipped:  i.qtyShipped,
		Refunded: i.qtyRefunded,
		Canceled: i.qtyCanceled,
	}
}

// RowTotal is price times ordered quantity.
func (i *Item) RowTotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.qtyOrdered)))
}

// QtyToInvoice is the quantity neither invoiced nor canceled.
func (i *Item) QtyToInvoice() int {
	return max(0, i.qtyOrdered-i.qtyInvoiced-i.qtyCanceled)
}

// QtyToShip is the quantity still waiting for a shipment. Refunded units
// only reduce it when more was refunded than shipped, so a partially
// refunded line can keep reporting a remainder.
func (i *Item) QtyToShip() int {
	if !i.productType.IsShippable() {
		return 0
	}
	return max(0, i.qtyOrdered-max(i.qtyShipped, i.qtyRefunded)-i.qtyCanceled)
}

// QtyToRefund is the invoiced quantity not refunded yet.
func (i *Item) QtyToRefund() int {
	return max(0, i.qtyInvoiced-i.qtyRefunded)
}

func (i *Item) invoice(qty int) {
	i.qtyInvoiced += qty
}

func (i *Item) ship(qty int) error {
	if qty <= 0 || qty > i.QtyToShip() {
		return errs.NewValueIsOutOfRangeError("qty to ship for "+i.sku, qty, 1, i.QtyToShip())
	}
	i.qtyShipped += qty
	return nil
}

func (i *Item) refund(qty int) error {
	if qty <= 0 || qty > i.QtyToRefund() {
		return errs.NewValueIsOutOfRangeError("qty to refund for "+i.sku, qty, 1, i.QtyToRefund())
	}
	i.qtyRefunded += qty
	return nil
}

func (i *Item) cancel() {
	i.qtyCanceled += i.QtyToInvoice()
}

func validateSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	return nil
}

func validateQuantities(qty ItemQuantities) error {
	if qty.Ordered <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty ordered", fmt.Errorf("%d is not greater than 0", qty.Ordered))
	}

	var problems []error
	for name, value := range map[string]int{
		"qty invoiced": qty.Invoiced,
		"qty shipped":  qty.Shipped,
		"qty refunded": qty.Refunded,
		"qty canceled": qty.Canceled,
	} {
		if value < 0 || value > qty.Ordered {
			problems = append(problems, errs.NewValueIsOutOfRangeError(name, value, 0, qty.Ordered))
		}
	}
	return errors.Join(problems...)
}
