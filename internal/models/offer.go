package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Offer is a row of the offers table.
type Offer struct {
	OfferID       string              `db:"offer_id"`
	Code          string              `db:"code"`
	Title         string              `db:"title"`
	Description   sql.NullString      `db:"description"`
	DiscountType  string              `db:"discount_type"`
	DiscountValue decimal.Decimal     `db:"discount_value"`
	MinAmount     decimal.Decimal     `db:"min_amount"`
	MaxDiscount   decimal.NullDecimal `db:"max_discount"`
	ValidFrom     time.Time           `db:"valid_from"`
	ValidUntil    time.Time           `db:"valid_until"`
	UsageLimit    sql.NullInt32       `db:"usage_limit"`
	UsageCount    int32               `db:"usage_count"`
	IsActive      bool                `db:"is_active"`
	AuditFields
}
