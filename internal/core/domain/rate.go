package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Rate is the admin-maintained price of one foreign currency in INR.
type Rate struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	CurrencyName string          `json:"currencyName"`
	BaseRate     decimal.Decimal `json:"baseRate"`
	BuyRate      decimal.Decimal `json:"buyRate"`  // Price the house pays the customer
	SellRate     decimal.Decimal `json:"sellRate"` // Price the customer pays the house
	Markup       decimal.Decimal `json:"markup"`
	IsActive     bool            `json:"isActive"`
	LastUpdated  time.Time       `json:"lastUpdated"`
	AuditFields
}

// RateScale is the number of decimal places a stored rate keeps.
const RateScale = 4

// ValidateBand checks that all rates are positive and buyRate <= baseRate <= sellRate.
func (r Rate) ValidateBand() error {
	if !r.BuyRate.IsPositive() || !r.BaseRate.IsPositive() || !r.SellRate.IsPositive() {
		return fmt.Errorf("%w: rates for %s must be greater than zero", apperrors.ErrValidation, r.CurrencyCode)
	}
	for _, v := range []decimal.Decimal{r.BaseRate, r.BuyRate, r.SellRate, r.Markup} {
		if !v.Equal(v.Truncate(RateScale)) {
			return fmt.Errorf("%w: rates for %s allow at most %d decimal places", apperrors.ErrValidation, r.CurrencyCode, RateScale)
		}
	}
	if r.BuyRate.GreaterThan(r.BaseRate) || r.BaseRate.GreaterThan(r.SellRate) {
		return fmt.Errorf("%w: rates for %s must satisfy buyRate <= baseRate <= sellRate", apperrors.ErrValidation, r.CurrencyCode)
	}
	if r.Markup.IsNegative() {
		return fmt.Errorf("%w: markup for %s cannot be negative", apperrors.ErrValidation, r.CurrencyCode)
	}
	return nil
}

// RateFor returns the rate applied to a product: the house buys foreign currency
// for sell-side products and sells it for everything else.
func (r Rate) RateFor(productType ProductType) decimal.Decimal {
	if productType.HouseBuys() {
		return r.BuyRate
	}
	return r.SellRate
}

// RateUpdate describes a partial change to a rate. Nil fields are left unchanged.
type RateUpdate struct {
	CurrencyName *string
	BaseRate     *decimal.Decimal
	BuyRate      *decimal.Decimal
	SellRate     *decimal.Decimal
	Markup       *decimal.Decimal
	IsActive     *bool
}

// Apply returns a copy of r with the non-nil fields of u applied.
func (u RateUpdate) Apply(r Rate) Rate {
	if u.CurrencyName != nil {
		r.CurrencyName = *u.CurrencyName
	}
	if u.BaseRate != nil {
		r.BaseRate = *u.BaseRate
	}
	if u.BuyRate != nil {
		r.BuyRate = *u.BuyRate
	}
	if u.SellRate != nil {
		r.SellRate = *u.SellRate
	}
	if u.Markup != nil {
		r.Markup = *u.Markup
	}
	if u.IsActive != nil {
		r.IsActive = *u.IsActive
	}
	return r
}

// BulkRateUpdate sets the three prices of one currency.
type BulkRateUpdate struct {
	CurrencyCode string
	BaseRate     decimal.Decimal
	BuyRate      decimal.Decimal
	SellRate     decimal.Decimal
}
