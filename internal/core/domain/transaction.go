package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the state of one payment attempt.
type TransactionStatus string

const (
	TransactionInitiated TransactionStatus = "INITIATED"
	TransactionSuccess   TransactionStatus = "SUCCESS"
	TransactionFailed    TransactionStatus = "FAILED"
)

// Transaction is a single payment attempt against an order. An order may have
// several attempts but at most one reaches SUCCESS.
type Transaction struct {
	TransactionID    string            `json:"transactionID"` // Primary Key (UUID)
	OrderID          string            `json:"orderID"`       // FK -> orders.order_id
	UserID           string            `json:"userID"`
	Amount           decimal.Decimal   `json:"amount"` // INR, same as the order total
	Currency         string            `json:"currency"`
	Gateway          string            `json:"gateway"`
	GatewayOrderID   string            `json:"gatewayOrderID"`
	GatewayPaymentID *string           `json:"gatewayPaymentID,omitempty"`
	Status           TransactionStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// GatewayOrder is what a payment gateway returns when a payment is opened.
type GatewayOrder struct {
	GatewayOrderID string
	AmountMinor    int64 // paise
	Currency       string
	Receipt        string
}

// PaymentIntent is returned to the client to open the gateway checkout.
type PaymentIntent struct {
	Transaction  Transaction
	GatewayOrder GatewayOrder
	OrderNumber  string
	KeyID        string
}
