package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a row of the orders table. Metadata is stored as JSONB.
type Order struct {
	OrderID        string            `db:"order_id"`
	OrderNumber    string            `db:"order_number"`
	UserID         string            `db:"user_id"`
	ProductType    string            `db:"product_type"`
	CurrencyCode   string            `db:"currency_code"`
	AmountForeign  decimal.Decimal   `db:"amount_foreign"`
	ExchangeRate   decimal.Decimal   `db:"exchange_rate"`
	AmountINR      decimal.Decimal   `db:"amount_inr"`
	Commission     decimal.Decimal   `db:"commission"`
	Taxes          decimal.Decimal   `db:"taxes"`
	DeliveryCharge decimal.Decimal   `db:"delivery_charge"`
	TotalAmount    decimal.Decimal   `db:"total_amount"`
	Status         string            `db:"status"`
	PaymentStatus  string            `db:"payment_status"`
	DeliveryType   string            `db:"delivery_type"`
	AddressID      sql.NullString    `db:"address_id"`
	PartnerID      sql.NullString    `db:"partner_id"`
	Notes          sql.NullString    `db:"notes"`
	Metadata       map[string]string `db:"metadata"`
	CreatedAt      time.Time         `db:"created_at"`
	UpdatedAt      time.Time         `db:"updated_at"`
}
