package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ProductType is the kind of forex product an order is for.
type ProductType string

const (
	ProductBuyCurrency     ProductType = "BUY_CURRENCY"
	ProductSellCurrency    ProductType = "SELL_CURRENCY"
	ProductForexCard       ProductType = "FOREX_CARD"
	ProductCardReload      ProductType = "CARD_RELOAD"
	ProductCardUnload      ProductType = "CARD_UNLOAD"
	ProductSendMoney       ProductType = "SEND_MONEY"
	ProductTravelSim       ProductType = "TRAVEL_SIM"
	ProductTravelInsurance ProductType = "TRAVEL_INSURANCE"
)

// IsValid reports whether p is a known product type.
func (p ProductType) IsValid() bool {
	switch p {
	case ProductBuyCurrency, ProductSellCurrency, ProductForexCard, ProductCardReload,
		ProductCardUnload, ProductSendMoney, ProductTravelSim, ProductTravelInsurance:
		return true
	}
	return false
}

// HouseBuys is true when the customer hands foreign currency to the house.
func (p ProductType) HouseBuys() bool {
	return p == ProductSellCurrency || p == ProductCardUnload
}

// DeliveryType is how the customer receives or hands over the product.
type DeliveryType string

const (
	DeliveryDoorstep DeliveryType = "DOORSTEP"
	DeliveryPickup   DeliveryType = "PICKUP"
)

// IsValid reports whether d is a known delivery type.
func (d DeliveryType) IsValid() bool {
	return d == DeliveryDoorstep || d == DeliveryPickup
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderCreated          OrderStatus = "CREATED"
	OrderKYCPending       OrderStatus = "KYC_PENDING"
	OrderPaymentPending   OrderStatus = "PAYMENT_PENDING"
	OrderPaymentCompleted OrderStatus = "PAYMENT_COMPLETED"
	OrderProcessing       OrderStatus = "PROCESSING"
	OrderOutForDelivery   OrderStatus = "OUT_FOR_DELIVERY"
	OrderCompleted        OrderStatus = "COMPLETED"
	OrderCancelled        OrderStatus = "CANCELLED"
	OrderRefunded         OrderStatus = "REFUNDED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderCreated:          {OrderKYCPending, OrderPaymentPending, OrderCancelled},
	OrderKYCPending:       {OrderPaymentPending, OrderCancelled},
	OrderPaymentPending:   {OrderPaymentCompleted, OrderCancelled},
	OrderPaymentCompleted: {OrderProcessing, OrderRefunded},
	OrderProcessing:       {OrderOutForDelivery, OrderCompleted, OrderRefunded},
	OrderOutForDelivery:   {OrderCompleted},
}

// CancellableStatuses lists the statuses a customer may cancel from.
var CancellableStatuses = []OrderStatus{OrderCreated, OrderKYCPending, OrderPaymentPending}

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderCreated, OrderKYCPending, OrderPaymentPending, OrderPaymentCompleted, OrderProcessing,
		OrderOutForDelivery, OrderCompleted, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// IsCancellable reports whether a customer may cancel an order in status s.
func (s OrderStatus) IsCancellable() bool {
	for _, c := range CancellableStatuses {
		if s == c {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus tracks the money side of an order.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// MetadataKey names one of the documented order metadata entries.
type MetadataKey string

const (
	MetaSource               MetadataKey = "source"
	MetaOfferCode            MetadataKey = "offerCode"
	MetaTravelDate           MetadataKey = "travelDate"
	MetaPassportNumberMasked MetadataKey = "passportNumberMasked"
)

// OrderMetadata carries optional order attributes keyed by MetadataKey.
type OrderMetadata map[MetadataKey]string

// NewOrderMetadata converts a raw map and rejects unknown keys.
func NewOrderMetadata(raw map[string]string) (OrderMetadata, error) {
	if len(raw) == 0 {
		return OrderMetadata{}, nil
	}
	md := make(OrderMetadata, len(raw))
	for k, v := range raw {
		key := MetadataKey(k)
		switch key {
		case MetaSource, MetaOfferCode, MetaTravelDate, MetaPassportNumberMasked:
		default:
			return nil, fmt.Errorf("%w: unknown metadata key %q", apperrors.ErrValidation, k)
		}
		if key == MetaTravelDate {
			if _, err := time.Parse(time.DateOnly, v); err != nil {
				return nil, fmt.Errorf("%w: travelDate must be YYYY-MM-DD", apperrors.ErrValidation)
			}
		}
		md[key] = v
	}
	return md, nil
}

// Quote is the itemised price of a prospective order.
type Quote struct {
	CurrencyCode   string          `json:"currencyCode"`
	CurrencyName   string          `json:"currencyName"`
	ProductType    ProductType     `json:"productType"`
	DeliveryType   DeliveryType    `json:"deliveryType"`
	AmountForeign  decimal.Decimal `json:"amountForeign"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	BaseAmount     decimal.Decimal `json:"baseAmount"`
	Commission     decimal.Decimal `json:"commission"`
	Taxes          decimal.Decimal `json:"taxes"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// Order is a customer order. The pricing fields are a snapshot taken at creation
// and are never rewritten afterwards.
type Order struct {
	OrderID        string          `json:"orderID"` // Primary Key (UUID)
	OrderNumber    string          `json:"orderNumber"`
	UserID         string          `json:"userID"`
	ProductType    ProductType     `json:"productType"`
	CurrencyCode   string          `json:"currencyCode"`
	AmountForeign  decimal.Decimal `json:"amountForeign"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	AmountINR      decimal.Decimal `json:"amountINR"`
	Commission     decimal.Decimal `json:"commission"`
	Taxes          decimal.Decimal `json:"taxes"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         OrderStatus     `json:"status"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	DeliveryType   DeliveryType    `json:"deliveryType"`
	AddressID      *string         `json:"addressID,omitempty"`
	PartnerID      *string         `json:"partnerID,omitempty"`
	Notes          string          `json:"notes"`
	Metadata       OrderMetadata   `json:"metadata"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ApplyQuote copies the quote into the order's pricing snapshot.
func (o *Order) ApplyQuote(q Quote) {
	o.ProductType = q.ProductType
	o.DeliveryType = q.DeliveryType
	o.CurrencyCode = q.CurrencyCode
	o.AmountForeign = q.AmountForeign
	o.ExchangeRate = q.ExchangeRate
	o.AmountINR = q.BaseAmount
	o.Commission = q.Commission
	o.Taxes = q.Taxes
	o.DeliveryCharge = q.DeliveryCharge
	o.TotalAmount = q.TotalAmount
}

// OrderFilter narrows ListMyOrders.
type OrderFilter struct {
	Status *OrderStatus
	Page
}

// QuoteRequest is the caller's input to the quote calculator.
type QuoteRequest struct {
	CurrencyCode  string
	AmountForeign decimal.Decimal
	ProductType   ProductType
	DeliveryType  DeliveryType
}
