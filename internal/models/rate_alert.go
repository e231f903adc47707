package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// RateAlert is a row of the rate_alerts table.
type RateAlert struct {
	AlertID      string          `db:"alert_id"`
	UserID       string          `db:"user_id"`
	CurrencyCode string          `db:"currency_code"`
	TargetRate   decimal.Decimal `db:"target_rate"`
	AlertType    string          `db:"alert_type"`
	IsActive     bool            `db:"is_active"`
	TriggeredAt  sql.NullTime    `db:"triggered_at"`
	CreatedAt    time.Time       `db:"created_at"`
}
