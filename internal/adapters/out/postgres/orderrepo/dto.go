// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored in three tables: the order row itself, its lines and its invoices.
package orderrepo

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The in-process flag of the aggregate is transient and has no column.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	State            string          `gorm:"type:varchar(32);not null;index"`
	Status           string          `gorm:"type:varchar(32);not null"`
	TotalPaid        decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	TotalRefunded    decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	HoldBeforeState  string          `gorm:"type:varchar(32)"`
	HoldBeforeStatus string          `gorm:"type:varchar(32)"`

	Items    []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Invoices []InvoiceDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is an order line. Position keeps the lines in the order they were placed.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	SKU         string          `gorm:"column:sku;type:varchar(64);not null"`
	ProductType string          `gorm:"type:varchar(32);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	QtyOrdered  int             `gorm:"not null"`
	QtyInvoiced int             `gorm:"not null;default:0"`
	QtyShipped  int             `gorm:"not null;default:0"`
	QtyRefunded int             `gorm:"not null;default:0"`
	QtyCanceled int             `gorm:"not null;default:0"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// InvoiceDTO stores an invoice with its numeric state (1 open, 2 paid, 3 canceled).
type InvoiceDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"not null"`
	State      int             `gorm:"type:smallint;not null;index"`
	GrandTotal decimal.Decimal `gorm:"type:numeric(20,4);not null"`
}

func (InvoiceDTO) TableName() string {
	return "order_invoices"
}

// fromDomain converts an order aggregate with its lines and invoices to its
// database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	hold := aggregate.HoldBefore()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		qty := item.Quantities()
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			Position:    i,
			SKU:         item.SKU(),
			ProductType: string(item.ProductType()),
			Price:       item.Price(),
			QtyOrdered:  qty.Ordered,
			QtyInvoiced: qty.Invoiced,
			QtyShipped:  qty.Shipped,
			QtyRefunded: qty.Refunded,
			QtyCanceled: qty.Canceled,
		})
	}

	invoices := make([]InvoiceDTO, 0, len(aggregate.Invoices()))
	for i, invoice := range aggregate.Invoices() {
		invoices = append(invoices, InvoiceDTO{
			ID:         invoice.ID().Bytes(),
			OrderID:    orderID,
			Position:   i,
			State:      int(invoice.State()),
			GrandTotal: invoice.GrandTotal(),
		})
	}

	return OrderDTO{
		ID:               orderID,
		State:            string(aggregate.State()),
		Status:           aggregate.Status(),
		TotalPaid:        aggregate.TotalPaid(),
		TotalRefunded:    aggregate.TotalRefunded(),
		HoldBeforeState:  string(hold.State),
		HoldBeforeStatus: hold.Status,
		Items:            items,
		Invoices:         invoices,
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, so stored rows that
// break an invariant are reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	var problems []error
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			problems = append(problems, itemErr)
			continue
		}
		items = append(items, item)
	}

	invoices := make([]*order.Invoice, 0, len(dto.Invoices))
	for _, invoiceDTO := range dto.Invoices {
		invoice, invoiceErr := invoiceToDomain(invoiceDTO)
		if invoiceErr != nil {
			problems = append(problems, invoiceErr)
			continue
		}
		invoices = append(invoices, invoice)
	}

	if err = errors.Join(problems...); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.State(dto.State),
		dto.Status,
		items,
		invoices,
		order.Payments{Paid: dto.TotalPaid, Refunded: dto.TotalRefunded},
		order.Hold{State: order.State(dto.HoldBeforeState), Status: dto.HoldBeforeStatus},
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, dto.SKU, order.ProductType(dto.ProductType), dto.Price, order.ItemQuantities{
		Ordered:  dto.QtyOrdered,
		Invoiced: dto.QtyInvoiced,
		Shipped:  dto.QtyShipped,
		Refunded: dto.QtyRefunded,
		Canceled: dto.QtyCanceled,
	})
}

func invoiceToDomain(dto InvoiceDTO) (*order.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreInvoice(id, order.InvoiceState(dto.State), dto.GrandTotal)
}
