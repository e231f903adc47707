package handlers

import (
	"net/http"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to order payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("/create-order", h.initiatePayment)
		payments.POST("/verify", h.verifyPayment)
		payments.GET("/transactions", h.listTransactions)
	}
}

// initiatePayment godoc
// @Summary Open a payment for an order
// @Description Creates a gateway order for the order total and records the payment attempt
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.InitiatePaymentRequest true "Order to pay"
// @Success 201 {object} dto.InitiatePaymentResponse
// @Failure 403 {object} dto.ErrorResponse "Not your order"
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 409 {object} dto.ErrorResponse "Order already paid or closed"
// @Security BearerAuth
// @Router /payments/create-order [post]
func (h *paymentHandler) initiatePayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	intent, err := h.paymentService.InitiatePayment(c.Request.Context(), req.OrderID, userID)
	if err != nil {
		respondError(c, err, "Failed to initiate payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInitiatePaymentResponse(intent))
}

// verifyPayment godoc
// @Summary Verify a completed checkout
// @Description Checks the gateway signature and marks the order paid
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.VerifyPaymentRequest true "Gateway checkout result"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid signature"
// @Failure 404 {object} dto.ErrorResponse "Payment attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Order already paid"
// @Security BearerAuth
// @Router /payments/verify [post]
func (h *paymentHandler) verifyPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.paymentService.VerifyPayment(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to verify payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// listTransactions godoc
// @Summary List my payment attempts
// @Tags payments
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /payments/transactions [get]
func (h *paymentHandler) listTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	txns, total, err := h.paymentService.ListMyTransactions(c.Request.Context(), userID, domain.Page{Page: q.Page, Limit: q.Limit})
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, q.Page, q.Limit, total))
}
