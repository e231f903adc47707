package services

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/dto"
)

// PaymentSvcFacade opens and confirms gateway payments for orders.
type PaymentSvcFacade interface {
	InitiatePayment(ctx context.Context, orderID, userID string) (*domain.PaymentIntent, error)
	VerifyPayment(ctx context.Context, userID string, req dto.VerifyPaymentRequest) (*domain.Order, error)
	ListMyTransactions(ctx context.Context, userID string, page domain.Page) ([]domain.Transaction, int, error)
}

// PaymentGateway is the external payment provider.
type PaymentGateway interface {
	// Name identifies the gateway on stored transactions.
	Name() string

	// KeyID is the public key the client checkout needs.
	KeyID() string

	// CreateOrder opens a payment for amountMinor (paise) with receipt as the merchant reference.
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*domain.GatewayOrder, error)

	// Verify checks the signature the client received from the gateway checkout.
	Verify(gatewayOrderID, gatewayPaymentID, signature string) bool
}
