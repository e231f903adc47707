package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
)

// TransactionReader defines read operations for payment attempts
type TransactionReader interface {
	// FindTransactionByGatewayOrderID retrieves the attempt opened with the gateway under gatewayOrderID.
	FindTransactionByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves a page of a user's payment attempts with the total count.
	ListTransactionsByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Transaction, int, error)
}

// TransactionWriter defines write operations for payment attempts
type TransactionWriter interface {
	// SaveInitiatedTransaction inserts the attempt and marks the order payment INITIATED atomically.
	SaveInitiatedTransaction(ctx context.Context, txn domain.Transaction) error

	// CompletePayment marks the attempt SUCCESS and the order PAYMENT_COMPLETED in one database
	// transaction. Returns apperrors.ErrInvalidState when the order already has a successful payment.
	CompletePayment(ctx context.Context, transactionID, gatewayPaymentID string, at time.Time) (*domain.Order, error)
}

// TransactionRepositoryFacade combines all payment-attempt repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
