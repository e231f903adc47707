package dto

import (
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to place an order. Prices are never
// accepted from the client; they are recomputed from the current rate.
type CreateOrderRequest struct {
	ProductType   domain.ProductType  `json:"productType" binding:"required,oneof=BUY_CURRENCY SELL_CURRENCY FOREX_CARD CARD_RELOAD CARD_UNLOAD SEND_MONEY TRAVEL_SIM TRAVEL_INSURANCE"`
	CurrencyCode  CurrencyCode        `json:"currencyCode" binding:"required,currency_code"`
	AmountForeign decimal.Decimal     `json:"amountForeign" binding:"required,gt=0"`
	DeliveryType  domain.DeliveryType `json:"deliveryType" binding:"omitempty,oneof=DOORSTEP PICKUP"`
	AddressID     *string             `json:"addressID" binding:"omitempty,uuid"`
	Notes         string              `json:"notes" binding:"max=500"`
	Metadata      map[string]string   `json:"metadata"`
}

// ToQuoteRequest extracts the pricing inputs of the order.
func (r CreateOrderRequest) ToQuoteRequest() domain.QuoteRequest {
	return domain.QuoteRequest{
		CurrencyCode:  r.CurrencyCode.String(),
		AmountForeign: r.AmountForeign,
		ProductType:   r.ProductType,
		DeliveryType:  r.DeliveryType,
	}
}

// ListOrdersQuery defines query parameters for listing orders.
type ListOrdersQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=CREATED KYC_PENDING PAYMENT_PENDING PAYMENT_COMPLETED PROCESSING OUT_FOR_DELIVERY COMPLETED CANCELLED REFUNDED"`
	PageQuery
}

// ToOrderFilter converts the query into a repository filter.
func (q ListOrdersQuery) ToOrderFilter() domain.OrderFilter {
	f := domain.OrderFilter{Page: domain.Page{Page: q.Page, Limit: q.Limit}}
	if q.Status != "" {
		s := domain.OrderStatus(q.Status)
		f.Status = &s
	}
	return f
}

// UpdateOrderStatusRequest moves an order through its lifecycle.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required,oneof=CREATED KYC_PENDING PAYMENT_PENDING PAYMENT_COMPLETED PROCESSING OUT_FOR_DELIVERY COMPLETED CANCELLED REFUNDED"`
}

// AssignPartnerRequest hands an order to a fulfilment partner.
type AssignPartnerRequest struct {
	PartnerID string `json:"partnerID" binding:"required,uuid"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID        string               `json:"orderID"`
	OrderNumber    string               `json:"orderNumber"`
	UserID         string               `json:"userID"`
	ProductType    domain.ProductType   `json:"productType"`
	CurrencyCode   string               `json:"currencyCode"`
	AmountForeign  decimal.Decimal      `json:"amountForeign"`
	ExchangeRate   decimal.Decimal      `json:"exchangeRate"`
	AmountINR      decimal.Decimal      `json:"amountINR"`
	Commission     decimal.Decimal      `json:"commission"`
	Taxes          decimal.Decimal      `json:"taxes"`
	DeliveryCharge decimal.Decimal      `json:"deliveryCharge"`
	TotalAmount    decimal.Decimal      `json:"totalAmount"`
	Status         domain.OrderStatus   `json:"status"`
	PaymentStatus  domain.PaymentStatus `json:"paymentStatus"`
	DeliveryType   domain.DeliveryType  `json:"deliveryType"`
	AddressID      *string              `json:"addressID,omitempty"`
	PartnerID      *string              `json:"partnerID,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	Metadata       map[string]string    `json:"metadata,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	var md map[string]string
	if len(o.Metadata) > 0 {
		md = make(map[string]string, len(o.Metadata))
		for k, v := range o.Metadata {
			md[string(k)] = v
		}
	}
	return OrderResponse{
		OrderID:        o.OrderID,
		OrderNumber:    o.OrderNumber,
		UserID:         o.UserID,
		ProductType:    o.ProductType,
		CurrencyCode:   o.CurrencyCode,
		AmountForeign:  utils.RoundMoney(o.AmountForeign),
		ExchangeRate:   o.ExchangeRate,
		AmountINR:      utils.RoundMoney(o.AmountINR),
		Commission:     utils.RoundMoney(o.Commission),
		Taxes:          utils.RoundMoney(o.Taxes),
		DeliveryCharge: utils.RoundMoney(o.DeliveryCharge),
		TotalAmount:    utils.RoundMoney(o.TotalAmount),
		Status:         o.Status,
		PaymentStatus:  o.PaymentStatus,
		DeliveryType:   o.DeliveryType,
		AddressID:      o.AddressID,
		PartnerID:      o.PartnerID,
		Notes:          o.Notes,
		Metadata:       md,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ListOrdersResponse wraps a page of orders.
type ListOrdersResponse struct {
	Orders     []OrderResponse    `json:"orders"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToListOrdersResponse converts a page of domain orders.
func ToListOrdersResponse(orders []domain.Order, page, limit, total int) ListOrdersResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return ListOrdersResponse{Orders: res, Pagination: NewPaginationResponse(page, limit, total)}
}
