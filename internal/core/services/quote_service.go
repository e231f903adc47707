package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/utils/pricing"
)

type quoteService struct {
	BaseService
	rates      portssvc.RateReaderSvc
	calculator pricing.Calculator
}

// NewQuoteService creates a quote service pricing against the active rates.
func NewQuoteService(rates portssvc.RateReaderSvc, calculator pricing.Calculator) portssvc.QuoteSvc {
	return &quoteService{rates: rates, calculator: calculator}
}

var _ portssvc.QuoteSvc = (*quoteService)(nil)

// Quote prices req against the current active rate. Input is validated before the rate is read.
func (s *quoteService) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	if err := pricing.ValidateForeignAmount(req.AmountForeign); err != nil {
		return nil, err
	}
	if !req.ProductType.IsValid() {
		return nil, fmt.Errorf("%w: unknown product type %q", apperrors.ErrValidation, req.ProductType)
	}

	rate, err := s.rates.GetActiveRate(ctx, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	quote, err := s.calculator.Calculate(*rate, req.AmountForeign, req.ProductType, req.DeliveryType)
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Quote calculated",
		slog.String("currency_code", quote.CurrencyCode),
		slog.String("product_type", string(quote.ProductType)),
		slog.String("total_amount", quote.TotalAmount.String()))
	return &quote, nil
}
