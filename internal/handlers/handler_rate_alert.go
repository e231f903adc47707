package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateAlertHandler handles a customer's rate alerts.
type rateAlertHandler struct {
	alertService portssvc.RateAlertSvc
}

func newRateAlertHandler(as portssvc.RateAlertSvc) *rateAlertHandler {
	return &rateAlertHandler{alertService: as}
}

// registerRateAlertRoutes registers the alert routes. They sit under /rates next to the public rate routes.
func registerRateAlertRoutes(rg *gin.RouterGroup, alertService portssvc.RateAlertSvc) {
	h := newRateAlertHandler(alertService)

	rates := rg.Group("/rates")
	{
		rates.POST("/alert", h.createRateAlert)
		rates.GET("/alerts/my", h.listMyAlerts)
		rates.DELETE("/alert/:alertID", h.deleteRateAlert)
	}
}

// createRateAlert godoc
// @Summary Create a rate alert
// @Description Notifies the caller once the sell rate of the currency is at or below the target
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   alert body dto.CreateRateAlertRequest true "Alert details"
// @Success 201 {object} dto.RateAlertResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Unknown currency"
// @Security BearerAuth
// @Router /rates/alert [post]
func (h *rateAlertHandler) createRateAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateRateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	alert, err := h.alertService.CreateRateAlert(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create rate alert")
		return
	}

	logger.Info("Rate alert created", slog.String("alert_id", alert.AlertID), slog.String("currency_code", alert.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToRateAlertResponse(alert))
}

// listMyAlerts godoc
// @Summary List my rate alerts
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.RateAlertResponse
// @Security BearerAuth
// @Router /rates/alerts/my [get]
func (h *rateAlertHandler) listMyAlerts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	alerts, err := h.alertService.ListMyAlerts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list rate alerts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRateAlertResponse(alerts))
}

// deleteRateAlert godoc
// @Summary Delete a rate alert
// @Tags rates
// @Param   alertID path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse "Not your alert"
// @Failure 404 {object} dto.ErrorResponse "Alert not found"
// @Security BearerAuth
// @Router /rates/alert/{alertID} [delete]
func (h *rateAlertHandler) deleteRateAlert(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.alertService.DeleteRateAlert(c.Request.Context(), c.Param("alertID"), userID); err != nil {
		respondError(c, err, "Failed to delete rate alert")
		return
	}
	c.Status(http.StatusNoContent)
}
