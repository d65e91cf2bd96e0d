package http

import (
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewOrderLine struct {
	SKU         string          `json:"sku"`
	ProductType string          `json:"productType"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty"`
}

type NewOrder struct {
	// ID is optional; a new identifier is generated when empty.
	ID    string         `json:"id"`
	Items []NewOrderLine `json:"items"`
}

type NewInvoice struct {
	Capture bool `json:"capture"`
}

type ItemQty struct {
	ItemID string `json:"itemId"`
	Qty    int    `json:"qty"`
}

type NewShipment struct {
	Items []ItemQty `json:"items"`
}

type NewRefund struct {
	Items  []ItemQty       `json:"items"`
	Amount decimal.Decimal `json:"amount"`
}

type Capabilities struct {
	CanInvoice    bool `json:"canInvoice"`
	CanShip       bool `json:"canShip"`
	CanCreditmemo bool `json:"canCreditmemo"`
	CanHold       bool `json:"canHold"`
	CanUnhold     bool `json:"canUnhold"`
	CanCancel     bool `json:"canCancel"`
	IsVirtual     bool `json:"isVirtual"`
}

type OrderItem struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	ProductType string          `json:"productType"`
	Price       decimal.Decimal `json:"price"`
	QtyOrdered  int             `json:"qtyOrdered"`
	QtyInvoiced int             `json:"qtyInvoiced"`
	QtyShipped  int             `json:"qtyShipped"`
	QtyRefunded int             `json:"qtyRefunded"`
	QtyCanceled int             `json:"qtyCanceled"`
	QtyToShip   int             `json:"qtyToShip"`
	QtyToRefund int             `json:"qtyToRefund"`
}

type OrderInvoice struct {
	ID         string          `json:"id"`
	State      string          `json:"state"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

type Order struct {
	ID            string          `json:"id"`
	State         string          `json:"state"`
	Status        string          `json:"status"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalRefunded decimal.Decimal `json:"totalRefunded"`
	TotalDue      decimal.Decimal `json:"totalDue"`
	Capabilities  Capabilities    `json:"capabilities"`
	Items         []OrderItem     `json:"items"`
	Invoices      []OrderInvoice  `json:"invoices"`
}

type InvoiceCreated struct {
	InvoiceID string `json:"invoiceId"`
	Order     Order  `json:"order"`
}

type Classification struct {
	State   string `json:"state"`
	Status  string `json:"status"`
	Changed bool   `json:"changed"`
}

func orderFromView(view queries.GetOrderQueryResponse) Order {
	response := Order{
		ID:            view.ID.String(),
		State:         string(view.State),
		Status:        view.Status,
		GrandTotal:    view.GrandTotal,
		TotalPaid:     view.TotalPaid,
		TotalRefunded: view.TotalRefunded,
		TotalDue:      view.TotalDue,
		Capabilities:  Capabilities(view.Capabilities),
		Items:         make([]OrderItem, 0, len(view.Items)),
		Invoices:      make([]OrderInvoice, 0, len(view.Invoices)),
	}

	for _, item := range view.Items {
		response.Items = append(response.Items, OrderItem{
			ID:          item.ID.String(),
			SKU:         item.SKU,
			ProductType: string(item.ProductType),
			Price:       item.Price,
			QtyOrdered:  item.Quantities.Ordered,
			QtyInvoiced: item.Quantities.Invoiced,
			QtyShipped:  item.Quantities.Shipped,
			QtyRefunded: item.Quantities.Refunded,
			QtyCanceled: item.Quantities.Canceled,
			QtyToShip:   item.QtyToShip,
			QtyToRefund: item.QtyToRefund,
		})
	}

	for _, invoice := range view.Invoices {
		response.Invoices = append(response.Invoices, OrderInvoice{
			ID:         invoice.ID.String(),
			State:      invoice.State.String(),
			GrandTotal: invoice.GrandTotal,
		})
	}

	return response
}

func classificationFromResult(result services.ClassificationResult) Classification {
	return Classification{
		State:   string(result.State),
		Status:  result.Status,
		Changed: result.Changed,
	}
}
