package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to currency rates and quotes.
type rateHandler struct {
	rateService  portssvc.RateReaderSvc
	quoteService portssvc.QuoteSvc
}

func newRateHandler(rs portssvc.RateReaderSvc, qs portssvc.QuoteSvc) *rateHandler {
	return &rateHandler{
		rateService:  rs,
		quoteService: qs,
	}
}

// registerRateRoutes registers the public rate routes.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateReaderSvc, quoteService portssvc.QuoteSvc, stream RateSubscriber, heartbeat time.Duration) {
	h := newRateHandler(rateService, quoteService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.POST("/calculate", h.calculate)
		if stream != nil {
			rates.GET("/stream", newRateStreamHandler(stream, heartbeat).streamRates)
		}
		rates.GET("/:currencyCode", h.getRate)
	}
}

// listRates godoc
// @Summary List active rates
// @Description Retrieves all active currency rates ordered by currency name
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.RateResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListActiveRates(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list rates")
		return
	}

	logger.Debug("Rates listed", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// getRate godoc
// @Summary Get a rate by currency code
// @Description Retrieves the rate of one currency
// @Tags rates
// @Produce  json
// @Param   currencyCode path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code"
// @Failure 404 {object} dto.ErrorResponse "Rate not found"
// @Router /rates/{currencyCode} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	currencyCode := strings.ToUpper(c.Param("currencyCode"))
	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "VALIDATION", Message: "Currency code must be 3 letters"})
		return
	}

	rate, err := h.rateService.GetRate(c.Request.Context(), currencyCode)
	if err != nil {
		respondError(c, err, "Failed to retrieve rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// calculate godoc
// @Summary Calculate a quote
// @Description Prices a prospective order against the current active rate. Nothing is stored.
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   quote body dto.CalculateQuoteRequest true "Quote input"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Rate not found or inactive"
// @Router /rates/calculate [post]
func (h *rateHandler) calculate(c *gin.Context) {
	var req dto.CalculateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quote, err := h.quoteService.Quote(c.Request.Context(), req.ToQuoteRequest())
	if err != nil {
		respondError(c, err, "Failed to calculate quote")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}
