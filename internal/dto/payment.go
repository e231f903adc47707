package dto

import (
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/utils"
	"github.com/shopspring/decimal"
)

// InitiatePaymentRequest opens a gateway payment for an order.
type InitiatePaymentRequest struct {
	OrderID string `json:"orderID" binding:"required,uuid"`
}

// InitiatePaymentResponse carries what the client checkout needs.
type InitiatePaymentResponse struct {
	TransactionID  string `json:"transactionID"`
	GatewayOrderID string `json:"gatewayOrderID"`
	Amount         int64  `json:"amount"` // paise
	Currency       string `json:"currency"`
	KeyID          string `json:"keyID"`
	OrderNumber    string `json:"orderNumber"`
}

// ToInitiatePaymentResponse converts a domain.PaymentIntent.
func ToInitiatePaymentResponse(p *domain.PaymentIntent) InitiatePaymentResponse {
	return InitiatePaymentResponse{
		TransactionID:  p.Transaction.TransactionID,
		GatewayOrderID: p.GatewayOrder.GatewayOrderID,
		Amount:         p.GatewayOrder.AmountMinor,
		Currency:       p.GatewayOrder.Currency,
		KeyID:          p.KeyID,
		OrderNumber:    p.OrderNumber,
	}
}

// VerifyPaymentRequest is what the client receives from the gateway checkout.
type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gatewayOrderID" binding:"required"`
	GatewayPaymentID string `json:"gatewayPaymentID" binding:"required"`
	Signature        string `json:"signature" binding:"required,hexadecimal"`
}

// TransactionResponse defines the data returned for a payment attempt.
type TransactionResponse struct {
	TransactionID    string                   `json:"transactionID"`
	OrderID          string                   `json:"orderID"`
	Amount           decimal.Decimal          `json:"amount"`
	Currency         string                   `json:"currency"`
	Gateway          string                   `json:"gateway"`
	GatewayOrderID   string                   `json:"gatewayOrderID"`
	GatewayPaymentID *string                  `json:"gatewayPaymentID,omitempty"`
	Status           domain.TransactionStatus `json:"status"`
	CreatedAt        time.Time                `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    txn.TransactionID,
		OrderID:          txn.OrderID,
		Amount:           utils.RoundMoney(txn.Amount),
		Currency:         txn.Currency,
		Gateway:          txn.Gateway,
		GatewayOrderID:   txn.GatewayOrderID,
		GatewayPaymentID: txn.GatewayPaymentID,
		Status:           txn.Status,
		CreatedAt:        txn.CreatedAt,
	}
}

// ListTransactionsResponse wraps a page of payment attempts.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, page, limit, total int) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res, Pagination: NewPaginationResponse(page, limit, total)}
}
