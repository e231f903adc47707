package dto

import (
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/utils"
	"github.com/shopspring/decimal"
)

// CalculateQuoteRequest asks for the price of a prospective order.
type CalculateQuoteRequest struct {
	CurrencyCode  CurrencyCode        `json:"currencyCode" binding:"required,currency_code"`
	AmountForeign decimal.Decimal     `json:"amountForeign" binding:"required,gt=0"`
	ProductType   domain.ProductType  `json:"productType" binding:"required,oneof=BUY_CURRENCY SELL_CURRENCY FOREX_CARD CARD_RELOAD CARD_UNLOAD SEND_MONEY TRAVEL_SIM TRAVEL_INSURANCE"`
	DeliveryType  domain.DeliveryType `json:"deliveryType" binding:"omitempty,oneof=DOORSTEP PICKUP"`
}

// ToQuoteRequest converts the request into the calculator input.
func (r CalculateQuoteRequest) ToQuoteRequest() domain.QuoteRequest {
	return domain.QuoteRequest{
		CurrencyCode:  r.CurrencyCode.String(),
		AmountForeign: r.AmountForeign,
		ProductType:   r.ProductType,
		DeliveryType:  r.DeliveryType,
	}
}

// QuoteResponse is the itemised price, rounded to two decimals.
type QuoteResponse struct {
	CurrencyCode   string              `json:"currencyCode"`
	CurrencyName   string              `json:"currencyName"`
	ProductType    domain.ProductType  `json:"productType"`
	DeliveryType   domain.DeliveryType `json:"deliveryType"`
	AmountForeign  decimal.Decimal     `json:"amountForeign"`
	ExchangeRate   decimal.Decimal     `json:"exchangeRate"`
	BaseAmount     decimal.Decimal     `json:"baseAmount"`
	Commission     decimal.Decimal     `json:"commission"`
	Taxes          decimal.Decimal     `json:"taxes"`
	DeliveryCharge decimal.Decimal     `json:"deliveryCharge"`
	TotalAmount    decimal.Decimal     `json:"totalAmount"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		CurrencyCode:   q.CurrencyCode,
		CurrencyName:   q.CurrencyName,
		ProductType:    q.ProductType,
		DeliveryType:   q.DeliveryType,
		AmountForeign:  utils.RoundMoney(q.AmountForeign),
		ExchangeRate:   q.ExchangeRate,
		BaseAmount:     utils.RoundMoney(q.BaseAmount),
		Commission:     utils.RoundMoney(q.Commission),
		Taxes:          utils.RoundMoney(q.Taxes),
		DeliveryCharge: utils.RoundMoney(q.DeliveryCharge),
		TotalAmount:    utils.RoundMoney(q.TotalAmount),
	}
}
