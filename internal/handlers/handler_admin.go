package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles back-office HTTP requests. Every route is behind AdminOnly.
type adminHandler struct {
	rateService  portssvc.RateSvcFacade
	orderService portssvc.OrderAdminSvc
}

func newAdminHandler(rs portssvc.RateSvcFacade, os portssvc.OrderAdminSvc) *adminHandler {
	return &adminHandler{rateService: rs, orderService: os}
}

// registerAdminRoutes registers the back-office rate and order routes.
func registerAdminRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, orderService portssvc.OrderAdminSvc) {
	h := newAdminHandler(rateService, orderService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listAllRates)
		rates.POST("", h.createRate)
		rates.POST("/bulk-update", h.bulkUpdateRates)
		rates.PUT("/:currencyCode", h.updateRate)
		rates.DELETE("/:currencyCode", h.deleteRate)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.PUT("/:orderID/status", h.updateOrderStatus)
		orders.PUT("/:orderID/assign", h.assignPartner)
	}
}

// listAllRates godoc
// @Summary List all rates
// @Description Retrieves every rate including inactive ones (admin operation)
// @Tags admin
// @Produce  json
// @Success 200 {array} dto.RateResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /admin/rates [get]
func (h *adminHandler) listAllRates(c *gin.Context) {
	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// createRate godoc
// @Summary Create a rate
// @Description Adds a currency rate (admin operation)
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateRateRequest true "Rate details"
// @Success 201 {object} dto.RateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Currency code already exists"
// @Security BearerAuth
// @Router /admin/rates [post]
func (h *adminHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rate, err := h.rateService.CreateRate(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, err, "Failed to create rate")
		return
	}

	logger.Info("Rate created", slog.String("currency_code", rate.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToRateResponse(rate))
}

// updateRate godoc
// @Summary Update a rate
// @Description Partially updates a currency rate (admin operation)
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   currencyCode path string true "Currency Code (3 letters)"
// @Param   rate body dto.UpdateRateRequest true "Fields to change"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Rate not found"
// @Security BearerAuth
// @Router /admin/rates/{currencyCode} [put]
func (h *adminHandler) updateRate(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rate, err := h.rateService.UpdateRate(c.Request.Context(), strings.ToUpper(c.Param("currencyCode")), req, adminID)
	if err != nil {
		respondError(c, err, "Failed to update rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// deleteRate godoc
// @Summary Delete a rate
// @Tags admin
// @Param   currencyCode path string true "Currency Code (3 letters)"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Rate not found"
// @Security BearerAuth
// @Router /admin/rates/{currencyCode} [delete]
func (h *adminHandler) deleteRate(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.rateService.DeleteRate(c.Request.Context(), strings.ToUpper(c.Param("currencyCode")), adminID); err != nil {
		respondError(c, err, "Failed to delete rate")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkUpdateRates godoc
// @Summary Update several rates at once
// @Description Applies every update or none
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   rates body dto.BulkUpdateRatesRequest true "Rates to set"
// @Success 200 {array} dto.RateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Unknown currency"
// @Security BearerAuth
// @Router /admin/rates/bulk-update [post]
func (h *adminHandler) bulkUpdateRates(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.BulkUpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rates, err := h.rateService.BulkUpdateRates(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, err, "Failed to update rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// listOrders godoc
// @Summary List all orders
// @Tags admin
// @Produce  json
// @Param   status query string false "Filter by status"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListOrdersResponse
// @Security BearerAuth
// @Router /admin/orders [get]
func (h *adminHandler) listOrders(c *gin.Context) {
	var q dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), q.ToOrderFilter())
	if err != nil {
		respondError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders, q.Page, q.Limit, total))
}

// updateOrderStatus godoc
// @Summary Move an order to a new status
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   status body dto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /admin/orders/{orderID}/status [put]
func (h *adminHandler) updateOrderStatus(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("orderID"), req.Status, adminID)
	if err != nil {
		respondError(c, err, "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// assignPartner godoc
// @Summary Assign a fulfilment partner
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   partner body dto.AssignPartnerRequest true "Partner"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse "Order or partner not found"
// @Failure 409 {object} dto.ErrorResponse "Partner inactive or order closed"
// @Security BearerAuth
// @Router /admin/orders/{orderID}/assign [put]
func (h *adminHandler) assignPartner(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.AssignPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.AssignPartner(c.Request.Context(), c.Param("orderID"), req.PartnerID, adminID)
	if err != nil {
		respondError(c, err, "Failed to assign partner")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
