package queries

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderReader loads an order aggregate. ports.OrderRepository satisfies it.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// GetOrderQueryHandler reads an order through the order repository.
//
// Capabilities are answered by the restored aggregate, so the read model
// never disagrees with what a command would accept.
type GetOrderQueryHandler struct {
	orders OrderReader
}

// NewGetOrderQueryHandler creates a handler for order queries.
func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return toResponse(o), nil
}

func toResponse(o *order.Order) GetOrderQueryResponse {
	response := GetOrderQueryResponse{
		ID:            o.ID(),
		State:         o.State(),
		Status:        o.Status(),
		GrandTotal:    o.GrandTotal(),
		TotalPaid:     o.TotalPaid(),
		TotalRefunded: o.TotalRefunded(),
		TotalDue:      o.TotalDue(),
		Capabilities: OrderCapabilities{
			CanInvoice:    o.CanInvoice(),
			CanShip:       o.CanShip(),
			CanCreditmemo: o.CanCreditmemo(),
			CanHold:       o.CanHold(),
			CanUnhold:     o.CanUnhold(),
			CanCancel:     o.CanCancel(),
			IsVirtual:     o.IsVirtual(),
		},
		Items:    make([]OrderItemResponse, 0, len(o.Items())),
		Invoices: make([]OrderInvoiceResponse, 0, len(o.Invoices())),
	}

	for _, item := range o.Items() {
		response.Items = append(response.Items, OrderItemResponse{
			ID:          item.ID(),
			SKU:         item.SKU(),
			ProductType: item.ProductType(),
			Price:       item.Price(),
			Quantities:  item.Quantities(),
			QtyToShip:   item.QtyToShip(),
			QtyToRefund: item.QtyToRefund(),
		})
	}

	for _, invoice := range o.Invoices() {
		response.Invoices = append(response.Invoices, OrderInvoiceResponse{
			ID:         invoice.ID(),
			State:      invoice.State(),
			GrandTotal: invoice.GrandTotal(),
		})
	}

	return response
}
