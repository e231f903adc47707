package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DiscountType selects how an offer's value is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFlat       DiscountType = "FLAT"
	DiscountCashback   DiscountType = "CASHBACK"
)

var hundred = decimal.NewFromInt(100)

// Offer is a promotional code.
type Offer struct {
	OfferID       string           `json:"offerID"`
	Code          string           `json:"code"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	DiscountType  DiscountType     `json:"discountType"`
	DiscountValue decimal.Decimal  `json:"discountValue"`
	MinAmount     decimal.Decimal  `json:"minAmount"`
	MaxDiscount   *decimal.Decimal `json:"maxDiscount,omitempty"`
	ValidFrom     time.Time        `json:"validFrom"`
	ValidUntil    time.Time        `json:"validUntil"`
	UsageLimit    *int             `json:"usageLimit,omitempty"`
	UsageCount    int              `json:"usageCount"`
	IsActive      bool             `json:"isActive"`
	AuditFields
}

// OfferResult is the outcome of applying an offer to an amount.
// Cashback is credited later and never reduces FinalAmount.
type OfferResult struct {
	Offer       Offer
	Amount      decimal.Decimal
	Discount    decimal.Decimal
	Cashback    decimal.Decimal
	FinalAmount decimal.Decimal
}

// CheckEligibility returns an InvalidState error when the offer cannot be used for amount at now.
func (o Offer) CheckEligibility(amount decimal.Decimal, now time.Time) error {
	switch {
	case !o.IsActive:
		return fmt.Errorf("%w: offer %s is not active", apperrors.ErrInvalidState, o.Code)
	case now.Before(o.ValidFrom):
		return fmt.Errorf("%w: offer %s is not valid yet", apperrors.ErrInvalidState, o.Code)
	case now.After(o.ValidUntil):
		return fmt.Errorf("%w: offer %s has expired", apperrors.ErrInvalidState, o.Code)
	case amount.LessThan(o.MinAmount):
		return fmt.Errorf("%w: minimum amount for offer %s is %s", apperrors.ErrInvalidState, o.Code, o.MinAmount.StringFixed(2))
	case o.UsageLimit != nil && o.UsageCount >= *o.UsageLimit:
		return fmt.Errorf("%w: offer %s usage limit reached", apperrors.ErrInvalidState, o.Code)
	}
	return nil
}

// Apply computes the discount or cashback of the offer on amount. Eligibility is not checked.
func (o Offer) Apply(amount decimal.Decimal) OfferResult {
	res := OfferResult{Offer: o, Amount: amount, Discount: decimal.Zero, Cashback: decimal.Zero}

	switch o.DiscountType {
	case DiscountPercentage:
		res.Discount = o.percentageOf(amount)
	case DiscountFlat:
		res.Discount = decimal.Min(o.DiscountValue, amount)
	case DiscountCashback:
		res.Cashback = o.percentageOf(amount)
	}

	res.FinalAmount = amount.Sub(res.Discount)
	return res
}

func (o Offer) percentageOf(amount decimal.Decimal) decimal.Decimal {
	v := amount.Mul(o.DiscountValue).Div(hundred)
	if o.MaxDiscount != nil && v.GreaterThan(*o.MaxDiscount) {
		v = *o.MaxDiscount
	}
	return v
}
