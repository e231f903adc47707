package mapping

import (
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:    d.TransactionID,
		OrderID:          d.OrderID,
		UserID:           d.UserID,
		Amount:           d.Amount,
		Currency:         d.Currency,
		Gateway:          d.Gateway,
		GatewayOrderID:   d.GatewayOrderID,
		GatewayPaymentID: toNullString(d.GatewayPaymentID),
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:    m.TransactionID,
		OrderID:          m.OrderID,
		UserID:           m.UserID,
		Amount:           m.Amount,
		Currency:         m.Currency,
		Gateway:          m.Gateway,
		GatewayOrderID:   m.GatewayOrderID,
		GatewayPaymentID: fromNullString(m.GatewayPaymentID),
		Status:           domain.TransactionStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
