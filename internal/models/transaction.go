package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table (one payment attempt).
type Transaction struct {
	TransactionID    string          `db:"transaction_id"`
	OrderID          string          `db:"order_id"`
	UserID           string          `db:"user_id"`
	Amount           decimal.Decimal `db:"amount"`
	Currency         string          `db:"currency"`
	Gateway          string          `db:"gateway"`
	GatewayOrderID   string          `db:"gateway_order_id"`
	GatewayPaymentID sql.NullString  `db:"gateway_payment_id"`
	Status           string          `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
