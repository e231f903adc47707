package dto

import (
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/utils"
	"github.com/shopspring/decimal"
)

// ValidateOfferRequest checks a code against an order subtotal.
type ValidateOfferRequest struct {
	Code   string          `json:"code" binding:"required,max=32"`
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// OfferResponse defines the data returned for an offer.
type OfferResponse struct {
	Code          string              `json:"code"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	DiscountType  domain.DiscountType `json:"discountType"`
	DiscountValue decimal.Decimal     `json:"discountValue"`
	MinAmount     decimal.Decimal     `json:"minAmount"`
	MaxDiscount   *decimal.Decimal    `json:"maxDiscount,omitempty"`
	ValidFrom     time.Time           `json:"validFrom"`
	ValidUntil    time.Time           `json:"validUntil"`
	UsageLimit    *int                `json:"usageLimit,omitempty"`
	UsageCount    int                 `json:"usageCount"`
}

// ToOfferResponse converts a domain.Offer to OfferResponse DTO
func ToOfferResponse(o *domain.Offer) OfferResponse {
	return OfferResponse{
		Code:          o.Code,
		Title:         o.Title,
		Description:   o.Description,
		DiscountType:  o.DiscountType,
		DiscountValue: o.DiscountValue,
		MinAmount:     o.MinAmount,
		MaxDiscount:   o.MaxDiscount,
		ValidFrom:     o.ValidFrom,
		ValidUntil:    o.ValidUntil,
		UsageLimit:    o.UsageLimit,
		UsageCount:    o.UsageCount,
	}
}

// ToListOfferResponse converts a slice of domain.Offer to a slice of OfferResponse DTOs
func ToListOfferResponse(offers []domain.Offer) []OfferResponse {
	res := make([]OfferResponse, len(offers))
	for i := range offers {
		res[i] = ToOfferResponse(&offers[i])
	}
	return res
}

// OfferSummary is the short form of an offer embedded in a validation result.
type OfferSummary struct {
	Code          string              `json:"code"`
	Title         string              `json:"title"`
	DiscountType  domain.DiscountType `json:"discountType"`
	DiscountValue decimal.Decimal     `json:"discountValue"`
}

// ValidateOfferResponse is the outcome of applying an offer to an amount.
type ValidateOfferResponse struct {
	Offer       OfferSummary    `json:"offer"`
	Amount      decimal.Decimal `json:"amount"`
	Discount    decimal.Decimal `json:"discount"`
	Cashback    decimal.Decimal `json:"cashback"`
	FinalAmount decimal.Decimal `json:"finalAmount"`
}

// ToValidateOfferResponse converts a domain.OfferResult, rounding amounts to two decimals.
func ToValidateOfferResponse(r *domain.OfferResult) ValidateOfferResponse {
	return ValidateOfferResponse{
		Offer: OfferSummary{
			Code:          r.Offer.Code,
			Title:         r.Offer.Title,
			DiscountType:  r.Offer.DiscountType,
			DiscountValue: r.Offer.DiscountValue,
		},
		Amount:      utils.RoundMoney(r.Amount),
		Discount:    utils.RoundMoney(r.Discount),
		Cashback:    utils.RoundMoney(r.Cashback),
		FinalAmount: utils.RoundMoney(r.FinalAmount),
	}
}

// RedeemOfferRequest consumes one use of an offer.
type RedeemOfferRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}
