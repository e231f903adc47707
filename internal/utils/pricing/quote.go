package pricing

import (
	"fmt"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// CommissionRate is charged on the INR base amount.
	CommissionRate = decimal.RequireFromString("0.02")
	// TaxRate is charged on base amount plus commission.
	TaxRate = decimal.RequireFromString("0.18")
	// DefaultDeliveryCharge is the flat fee for doorstep delivery.
	DefaultDeliveryCharge = decimal.NewFromInt(50)
)

// ForeignAmountScale is the number of decimal places accepted for a foreign amount.
const ForeignAmountScale = 4

// Calculator turns a rate and a requested foreign amount into an itemised quote.
// It performs no I/O and keeps full precision; rounding happens at the API boundary.
type Calculator struct {
	DeliveryCharge decimal.Decimal
}

// NewCalculator returns a Calculator charging deliveryCharge for doorstep delivery.
// A negative charge falls back to DefaultDeliveryCharge.
func NewCalculator(deliveryCharge decimal.Decimal) Calculator {
	if deliveryCharge.IsNegative() {
		deliveryCharge = DefaultDeliveryCharge
	}
	return Calculator{DeliveryCharge: deliveryCharge}
}

// Calculate prices amountForeign units of rate's currency for the given product and delivery.
// An empty deliveryType means PICKUP.
func (c Calculator) Calculate(rate domain.Rate, amountForeign decimal.Decimal, productType domain.ProductType, deliveryType domain.DeliveryType) (domain.Quote, error) {
	if err := ValidateForeignAmount(amountForeign); err != nil {
		return domain.Quote{}, err
	}
	if !productType.IsValid() {
		return domain.Quote{}, fmt.Errorf("%w: unknown product type %q", apperrors.ErrValidation, productType)
	}
	if deliveryType == "" {
		deliveryType = domain.DeliveryPickup
	}
	if !deliveryType.IsValid() {
		return domain.Quote{}, fmt.Errorf("%w: unknown delivery type %q", apperrors.ErrValidation, deliveryType)
	}

	exchangeRate := rate.RateFor(productType)
	baseAmount := amountForeign.Mul(exchangeRate)
	commission := baseAmount.Mul(CommissionRate)
	taxes := baseAmount.Add(commission).Mul(TaxRate)

	deliveryCharge := decimal.Zero
	if deliveryType == domain.DeliveryDoorstep {
		deliveryCharge = c.DeliveryCharge
	}

	return domain.Quote{
		CurrencyCode:   rate.CurrencyCode,
		CurrencyName:   rate.CurrencyName,
		ProductType:    productType,
		DeliveryType:   deliveryType,
		AmountForeign:  amountForeign,
		ExchangeRate:   exchangeRate,
		BaseAmount:     baseAmount,
		Commission:     commission,
		Taxes:          taxes,
		DeliveryCharge: deliveryCharge,
		TotalAmount:    baseAmount.Add(commission).Add(taxes).Add(deliveryCharge),
	}, nil
}

// ValidateForeignAmount rejects amounts that are not positive or are finer than ForeignAmountScale.
func ValidateForeignAmount(amountForeign decimal.Decimal) error {
	if !amountForeign.IsPositive() {
		return fmt.Errorf("%w: amountForeign must be greater than zero", apperrors.ErrValidation)
	}
	if !amountForeign.Equal(amountForeign.Truncate(ForeignAmountScale)) {
		return fmt.Errorf("%w: amountForeign allows at most %d decimal places", apperrors.ErrValidation, ForeignAmountScale)
	}
	return nil
}

// Calculate prices a quote with the default delivery charge.
func Calculate(rate domain.Rate, amountForeign decimal.Decimal, productType domain.ProductType, deliveryType domain.DeliveryType) (domain.Quote, error) {
	return NewCalculator(DefaultDeliveryCharge).Calculate(rate, amountForeign, productType, deliveryType)
}
