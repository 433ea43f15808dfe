package handler

import (
	"log/slog"
	"net/http"
	"time"

	"livesales/internal/delivery/api/response"
	"livesales/internal/domain/entity"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order capture, status and export endpoints
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest is the body of POST /orders. Either product_id or product_name with
// price_per_unit must be given.
type CreateOrderRequest struct {
	ProductID     *uuid.UUID       `json:"product_id"`
	ProductName   string           `json:"product_name" validate:"required_without=ProductID,max=120"`
	Barcode       string           `json:"barcode" validate:"max=64"`
	PricePerUnit  *decimal.Decimal `json:"price_per_unit"`
	WasDiscounted bool             `json:"was_discounted"`
	PlatformID    string           `json:"platform_id" validate:"required,uuid"`
	BuyerName     string           `json:"buyer_name" validate:"max=120"`
	PhoneNumber   string           `json:"phone_number" validate:"max=40"`
	Address       string           `json:"address" validate:"max=500"`
	CustomerNotes *string          `json:"customer_notes" validate:"omitempty,max=1000"`
	Source        string           `json:"source" validate:"omitempty,order_source"`
	Quantity      int              `json:"quantity" validate:"required,gte=1"`
	PaymentStatus string           `json:"payment_status" validate:"omitempty,payment_status"`
	IsFulfilled   bool             `json:"is_fulfilled"`
	Timestamp     *time.Time       `json:"timestamp"`
}

// UpdateOrderStatusRequest is the body of PATCH /orders/:id/status
type UpdateOrderStatusRequest struct {
	PaymentStatus *string `json:"payment_status" validate:"omitempty,payment_status"`
	IsFulfilled   *bool   `json:"is_fulfilled"`
}

// CreateOrder records a sale
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	platformID, err := uuid.Parse(req.PlatformID)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "platform_id failed uuid")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		ProductID:     req.ProductID,
		ProductName:   req.ProductName,
		Barcode:       req.Barcode,
		PricePerUnit:  req.PricePerUnit,
		WasDiscounted: req.WasDiscounted,
		PlatformID:    platformID,
		BuyerName:     req.BuyerName,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		CustomerNotes: req.CustomerNotes,
		Source:        entity.OrderSource(req.Source),
		Quantity:      req.Quantity,
		PaymentStatus: entity.PaymentStatus(req.PaymentStatus),
		IsFulfilled:   req.IsFulfilled,
		Timestamp:     req.Timestamp,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// GetOrder returns one order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListOrders returns orders matching platform_id, from, to, payment_status, fulfilled,
// limit and offset
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus changes payment status and/or fulfillment
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateOrderStatusInput{IsFulfilled: req.IsFulfilled}
	if req.PaymentStatus != nil {
		status := entity.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &status
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ExportOrders downloads the filtered orders as CSV. Each call uses one free-tier export.
func (h *OrderHandler) ExportOrders(c echo.Context) error {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	export, err := h.orderUC.ExportOrdersCSV(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, export.Filename, "text/csv; charset=utf-8", export.Content)
}
