package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is a row of the rates table.
type Rate struct {
	CurrencyCode string          `db:"currency_code"`
	CurrencyName string          `db:"currency_name"`
	BaseRate     decimal.Decimal `db:"base_rate"`
	BuyRate      decimal.Decimal `db:"buy_rate"`
	SellRate     decimal.Decimal `db:"sell_rate"`
	Markup       decimal.Decimal `db:"markup"`
	IsActive     bool            `db:"is_active"`
	LastUpdated  time.Time       `db:"last_updated"`
	AuditFields
}
