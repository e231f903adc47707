package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// offerHandler handles HTTP requests related to promotional offers.
type offerHandler struct {
	offerService portssvc.OfferSvcFacade
}

func newOfferHandler(os portssvc.OfferSvcFacade) *offerHandler {
	return &offerHandler{offerService: os}
}

// registerOfferRoutes registers the public offer routes and the authenticated redeem route.
func registerOfferRoutes(public *gin.RouterGroup, authenticated *gin.RouterGroup, offerService portssvc.OfferSvcFacade) {
	h := newOfferHandler(offerService)

	offers := public.Group("/offers")
	{
		offers.GET("", h.listOffers)
		offers.POST("/validate", h.validateOffer)
		offers.GET("/:code", h.getOffer)
	}
	authenticated.POST("/offers/redeem", h.redeemOffer)
}

// listOffers godoc
// @Summary List active offers
// @Description Retrieves offers that are active and inside their validity window
// @Tags offers
// @Produce  json
// @Success 200 {array} dto.OfferResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list offers"
// @Router /offers [get]
func (h *offerHandler) listOffers(c *gin.Context) {
	offers, err := h.offerService.ListActiveOffers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list offers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOfferResponse(offers))
}

// getOffer godoc
// @Summary Get an offer by code
// @Tags offers
// @Produce  json
// @Param   code path string true "Offer code"
// @Success 200 {object} dto.OfferResponse
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Router /offers/{code} [get]
func (h *offerHandler) getOffer(c *gin.Context) {
	offer, err := h.offerService.GetOfferByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, "Failed to retrieve offer")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

// validateOffer godoc
// @Summary Validate an offer code
// @Description Checks an offer against an amount and returns the discount or cashback. Usage is not consumed.
// @Tags offers
// @Accept  json
// @Produce  json
// @Param   offer body dto.ValidateOfferRequest true "Code and amount"
// @Success 200 {object} dto.ValidateOfferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Failure 409 {object} dto.ErrorResponse "Offer not applicable"
// @Router /offers/validate [post]
func (h *offerHandler) validateOffer(c *gin.Context) {
	var req dto.ValidateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.offerService.ValidateOffer(c.Request.Context(), req.Code, req.Amount)
	if err != nil {
		respondError(c, err, "Failed to validate offer")
		return
	}
	c.JSON(http.StatusOK, dto.ToValidateOfferResponse(result))
}

// redeemOffer godoc
// @Summary Redeem an offer
// @Description Consumes one use of an offer
// @Tags offers
// @Accept  json
// @Produce  json
// @Param   offer body dto.RedeemOfferRequest true "Offer code"
// @Success 200 {object} dto.OfferResponse
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Failure 409 {object} dto.ErrorResponse "Offer exhausted or unavailable"
// @Security BearerAuth
// @Router /offers/redeem [post]
func (h *offerHandler) redeemOffer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.RedeemOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	offer, err := h.offerService.RedeemOffer(c.Request.Context(), req.Code, userID)
	if err != nil {
		respondError(c, err, "Failed to redeem offer")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Offer redeemed", slog.String("code", offer.Code))
	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}
