// Package http exposes the order use cases over a JSON API built on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/voucher"
	"sales/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Use case ports of the server. The application handlers satisfy them
// through their pointer receivers.
type (
	CreateDraftOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDraftOrderCommand) (kernel.UUID, error)
	}
	AddOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddOrderItemCommand) error
	}
	RemoveOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveOrderItemCommand) error
	}
	ChangeOrderItemUnitsHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderItemUnitsCommand) error
	}
	ApplyVoucherHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyVoucherCommand) (voucher.EligibilityResult, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (order.Status, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	ListCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.ListCustomerOrdersQueryResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateDraftOrder     CreateDraftOrderHandler
	AddOrderItem         AddOrderItemHandler
	RemoveOrderItem      RemoveOrderItemHandler
	ChangeOrderItemUnits ChangeOrderItemUnitsHandler
	ApplyVoucher         ApplyVoucherHandler
	ChangeOrderStatus    ChangeOrderStatusHandler
	GetOrder             GetOrderHandler
	ListCustomerOrders   ListCustomerOrdersHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http.Server"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.POST("/orders/:orderId/items", s.AddOrderItem)
	v1.PUT("/orders/:orderId/items/:productId", s.ChangeOrderItemUnits)
	v1.DELETE("/orders/:orderId/items/:productId", s.RemoveOrderItem)
	v1.POST("/orders/:orderId/voucher", s.ApplyVoucher)
	v1.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	v1.GET("/customers/:customerId/orders", s.ListCustomerOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - opens a draft for a customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUID("customerId", body.CustomerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateDraftOrderCommand(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateDraftOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: id.Bytes()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// AddOrderItem handles POST /api/v1/orders/:orderId/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := parseUUID("productId", body.ProductID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, body.ProductName, body.Quantity, body.UnitPrice)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AddOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderItemUnits handles PUT /api/v1/orders/:orderId/items/:productId.
func (s *Server) ChangeOrderItemUnits(ctx echo.Context) error {
	orderID, productID, err := lineParams(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body ItemUnits
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderItemUnitsCommand(orderID, productID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeOrderItemUnits.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderId/items/:productId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, productID, err := lineParams(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyVoucher handles POST /api/v1/orders/:orderId/voucher. An ineligible
// voucher answers 422 with the reasons.
func (s *Server) ApplyVoucher(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body VoucherCode
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyVoucherCommand(orderID, body.Code)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ApplyVoucher.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	reasons := result.Reasons()
	if reasons == nil {
		reasons = []string{}
	}

	if !result.IsValid() {
		return ctx.JSON(http.StatusUnprocessableEntity, VoucherResult{Applied: false, Reasons: reasons})
	}

	return ctx.JSON(http.StatusOK, VoucherResult{Applied: true, Reasons: reasons})
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body StatusTransition
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, commands.Transition(body.Transition))
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatus{Status: status.String()})
}

// ListCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderSummary, len(list))
	for i, o := range list {
		response[i] = OrderSummary{
			ID:        o.ID.Bytes(),
			Status:    o.Status,
			Total:     o.Total,
			ItemCount: o.ItemCount,
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathUUID binds a uuid path parameter the way generated echo wrappers do.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return kernel.UUIDFromBytes(id[:])
}

func lineParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, productID, nil
}

func parseUUID(name, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
