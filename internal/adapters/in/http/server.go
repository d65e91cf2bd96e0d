// Package http exposes the sales order use cases over a JSON API built on echo.
package http

import (
	"context"
	"errors"
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	invoiceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.InvoiceOrderCommand) error
	}
	payInvoiceHandler interface {
		Handle(ctx context.Context, cmd commands.PayInvoiceCommand) error
	}
	shipOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ShipOrderCommand) error
	}
	refundOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RefundOrderCommand) error
	}
	orderActionHandler interface {
		Handle(ctx context.Context, cmd commands.OrderActionCommand) error
	}
	classifyOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ClassifyOrderCommand) (services.ClassificationResult, error)
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateOrder   createOrderHandler
	InvoiceOrder  invoiceOrderHandler
	PayInvoice    payInvoiceHandler
	ShipOrder     shipOrderHandler
	RefundOrder   refundOrderHandler
	OrderAction   orderActionHandler
	ClassifyOrder classifyOrderHandler
	GetOrder      getOrderHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1. middleware runs for every
// order route, after routing.
func (s *Server) RegisterRoutes(e *echo.Echo, middleware ...echo.MiddlewareFunc) {
	api := e.Group("/api/v1/orders", middleware...)
	api.POST("", s.CreateOrder)
	api.GET("/:id", s.GetOrder)
	api.POST("/:id/invoices", s.InvoiceOrder)
	api.POST("/:id/invoices/:invoiceId/pay", s.PayInvoice)
	api.POST("/:id/shipments", s.ShipOrder)
	api.POST("/:id/refunds", s.RefundOrder)
	api.POST("/:id/hold", s.orderAction(commands.OrderActionHold))
	api.POST("/:id/unhold", s.orderAction(commands.OrderActionUnhold))
	api.POST("/:id/cancel", s.orderAction(commands.OrderActionCancel))
	api.POST("/:id/classify", s.ClassifyOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.ID != "" {
		parsed, err := kernel.UUIDFromString(body.ID)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		orderID = parsed
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, commands.OrderLine{
			SKU:         item.SKU,
			ProductType: order.ProductType(item.ProductType),
			Price:       item.Price,
			Qty:         item.Qty,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, "Failed to create order", err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// InvoiceOrder handles POST /api/v1/orders/:id/invoices.
func (s *Server) InvoiceOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewInvoice
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewInvoiceOrderCommand(orderID, invoiceID, body.Capture)
	if err != nil {
		return badRequest(ctx, "Invalid invoice data: "+err.Error())
	}

	if err = s.handlers.InvoiceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, "Failed to invoice order", err)
	}

	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return fail(ctx, "Failed to retrieve order", err)
	}

	return ctx.JSON(http.StatusCreated, InvoiceCreated{
		InvoiceID: invoiceID.String(),
		Order:     orderFromView(view),
	})
}

// PayInvoice handles POST /api/v1/orders/:id/invoices/:invoiceId/pay.
func (s *Server) PayInvoice(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	invoiceID, err := pathID(ctx, "invoiceId")
	if err != nil {
		return badRequest(ctx, "Invalid invoice id")
	}

	cmd, err := commands.NewPayInvoiceCommand(orderID, invoiceID)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err = s.handlers.PayInvoice.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, "Failed to pay invoice", err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ShipOrder handles POST /api/v1/orders/:id/shipments.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewShipment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines, err := itemLines(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewShipOrderCommand(orderID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.handlers.ShipOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, "Failed to ship order", err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// RefundOrder handles POST /api/v1/orders/:id/refunds.
func (s *Server) RefundOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewRefund
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines, err := itemLines(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRefundOrderCommand(orderID, lines, body.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid refund data: "+err.Error())
	}

	if err = s.handlers.RefundOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, "Failed to refund order", err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ClassifyOrder handles POST /api/v1/orders/:id/classify.
func (s *Server) ClassifyOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewClassifyOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.handlers.ClassifyOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "Failed to classify order", err)
	}

	return ctx.JSON(http.StatusOK, classificationFromResult(result))
}

func (s *Server) orderAction(action commands.OrderAction) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderID, err := pathID(ctx, "id")
		if err != nil {
			return badRequest(ctx, "Invalid order id")
		}

		cmd, err := commands.NewOrderActionCommand(orderID, action)
		if err != nil {
			return badRequest(ctx, "Invalid order action: "+err.Error())
		}

		if err = s.handlers.OrderAction.Handle(ctx.Request().Context(), cmd); err != nil {
			return fail(ctx, "Failed to "+string(action)+" order", err)
		}

		return s.respondWithOrder(ctx, http.StatusOK, orderID)
	}
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return fail(ctx, "Failed to retrieve order", err)
	}

	return ctx.JSON(code, orderFromView(view))
}

func (s *Server) loadOrder(ctx echo.Context, orderID kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	return s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(id[:])
}

func itemLines(items []ItemQty) ([]order.ItemQty, error) {
	lines := make([]order.ItemQty, 0, len(items))
	for _, item := range items {
		itemID, err := kernel.UUIDFromString(item.ItemID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, order.ItemQty{ItemID: itemID, Qty: item.Qty})
	}
	return lines, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps domain errors to status codes. Rejected transitions and invalid
// values are conflicts with the order's current state. A missing default
// status label is a server configuration fault.
func fail(ctx echo.Context, message string, err error) error {
	code := statusFor(err)
	if code != http.StatusInternalServerError {
		message += ": " + err.Error()
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrDefaultStatusIsNotConfigured):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
