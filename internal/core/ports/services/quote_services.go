package services

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
)

// QuoteSvc prices a prospective order against the current active rate.
type QuoteSvc interface {
	Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)
}
