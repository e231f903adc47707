package dto

import (
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRateRequest defines the data needed to add a currency rate.
type CreateRateRequest struct {
	CurrencyCode CurrencyCode    `json:"currencyCode" binding:"required,currency_code"`
	CurrencyName string          `json:"currencyName" binding:"required,max=64"`
	BaseRate     decimal.Decimal `json:"baseRate" binding:"required,gt=0"`
	BuyRate      decimal.Decimal `json:"buyRate" binding:"required,gt=0"`
	SellRate     decimal.Decimal `json:"sellRate" binding:"required,gt=0"`
	Markup       decimal.Decimal `json:"markup" binding:"gte=0"`
	IsActive     *bool           `json:"isActive"` // Defaults to true
}

// UpdateRateRequest defines the data allowed for updating a rate.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateRateRequest struct {
	CurrencyName *string          `json:"currencyName" binding:"omitempty,max=64"`
	BaseRate     *decimal.Decimal `json:"baseRate" binding:"omitempty,gt=0"`
	BuyRate      *decimal.Decimal `json:"buyRate" binding:"omitempty,gt=0"`
	SellRate     *decimal.Decimal `json:"sellRate" binding:"omitempty,gt=0"`
	Markup       *decimal.Decimal `json:"markup" binding:"omitempty,gte=0"`
	IsActive     *bool            `json:"isActive"`
}

// ToRateUpdate converts the request into a domain partial update.
func (r UpdateRateRequest) ToRateUpdate() domain.RateUpdate {
	return domain.RateUpdate{
		CurrencyName: r.CurrencyName,
		BaseRate:     r.BaseRate,
		BuyRate:      r.BuyRate,
		SellRate:     r.SellRate,
		Markup:       r.Markup,
		IsActive:     r.IsActive,
	}
}

// BulkRateItem sets the prices of one currency.
type BulkRateItem struct {
	CurrencyCode CurrencyCode    `json:"currencyCode" binding:"required,currency_code"`
	BaseRate     decimal.Decimal `json:"baseRate" binding:"required,gt=0"`
	BuyRate      decimal.Decimal `json:"buyRate" binding:"required,gt=0"`
	SellRate     decimal.Decimal `json:"sellRate" binding:"required,gt=0"`
}

// BulkUpdateRatesRequest updates several currencies at once.
type BulkUpdateRatesRequest struct {
	Rates []BulkRateItem `json:"rates" binding:"required,min=1,dive"`
}

// ToBulkRateUpdates converts the request items into domain updates.
func (r BulkUpdateRatesRequest) ToBulkRateUpdates() []domain.BulkRateUpdate {
	updates := make([]domain.BulkRateUpdate, len(r.Rates))
	for i, item := range r.Rates {
		updates[i] = domain.BulkRateUpdate{
			CurrencyCode: item.CurrencyCode.String(),
			BaseRate:     item.BaseRate,
			BuyRate:      item.BuyRate,
			SellRate:     item.SellRate,
		}
	}
	return updates
}

// RateResponse defines the data returned for a rate.
type RateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	CurrencyName string          `json:"currencyName"`
	BaseRate     decimal.Decimal `json:"baseRate"`
	BuyRate      decimal.Decimal `json:"buyRate"`
	SellRate     decimal.Decimal `json:"sellRate"`
	Markup       decimal.Decimal `json:"markup"`
	IsActive     bool            `json:"isActive"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// ToRateResponse converts a domain.Rate to RateResponse DTO
func ToRateResponse(r *domain.Rate) RateResponse {
	return RateResponse{
		CurrencyCode: r.CurrencyCode,
		CurrencyName: r.CurrencyName,
		BaseRate:     r.BaseRate,
		BuyRate:      r.BuyRate,
		SellRate:     r.SellRate,
		Markup:       r.Markup,
		IsActive:     r.IsActive,
		LastUpdated:  r.LastUpdated,
	}
}

// ToListRateResponse converts a slice of domain.Rate to a slice of RateResponse DTOs
func ToListRateResponse(rates []domain.Rate) []RateResponse {
	res := make([]RateResponse, len(rates))
	for i := range rates {
		res[i] = ToRateResponse(&rates[i])
	}
	return res
}
