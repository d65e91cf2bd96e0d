// Package queries contains read-side operations. Handlers read the tables
// with plain SQL and never go through a unit of work.
package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its lines, invoices, totals and
// the actions currently allowed on it.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("order %s is %s (%s)\n", view.ID, view.State, view.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of an order.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	State         order.State
	Status        string
	GrandTotal    decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalRefunded decimal.Decimal
	TotalDue      decimal.Decimal
	Capabilities  OrderCapabilities
	Items         []OrderItemResponse
	Invoices      []OrderInvoiceResponse
}

// OrderCapabilities lists which operations the order accepts right now.
type OrderCapabilities struct {
	CanInvoice    bool
	CanShip       bool
	CanCreditmemo bool
	CanHold       bool
	CanUnhold     bool
	CanCancel     bool
	IsVirtual     bool
}

type OrderItemResponse struct {
	ID          kernel.UUID
	SKU         string
	ProductType order.ProductType
	Price       decimal.Decimal
	Quantities  order.ItemQuantities
	QtyToShip   int
	QtyToRefund int
}

type OrderInvoiceResponse struct {
	ID         kernel.UUID
	State      order.InvoiceState
	GrandTotal decimal.Decimal
}
