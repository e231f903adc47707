package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles customer HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers routes related to the caller's orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listMyOrders)
		orders.GET("/:orderID", h.getOrder)
		orders.PUT("/:orderID/cancel", h.cancelOrder)
	}
}

// createOrder godoc
// @Summary Place an order
// @Description Prices the request against the current rate and stores the order. Client-supplied prices are ignored.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "KYC not verified or address not owned"
// @Failure 404 {object} dto.ErrorResponse "Rate or address not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to create order"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create order",
		slog.String("currency_code", req.CurrencyCode.String()),
		slog.String("product_type", string(req.ProductType)))

	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listMyOrders godoc
// @Summary List my orders
// @Tags orders
// @Produce  json
// @Param   status query string false "Filter by status"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listMyOrders(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var q dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	orders, total, err := h.orderService.ListMyOrders(c.Request.Context(), userID, q.ToOrderFilter())
	if err != nil {
		respondError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders, q.Page, q.Limit, total))
}

// getOrder godoc
// @Summary Get one of my orders
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ErrorResponse "Not your order"
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("orderID"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// cancelOrder godoc
// @Summary Cancel one of my orders
// @Description Allowed while the order is CREATED, KYC_PENDING or PAYMENT_PENDING
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ErrorResponse "Not your order"
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 409 {object} dto.ErrorResponse "Order can no longer be cancelled"
// @Security BearerAuth
// @Router /orders/{orderID}/cancel [put]
func (h *orderHandler) cancelOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), c.Param("orderID"), userID)
	if err != nil {
		respondError(c, err, "Failed to cancel order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
