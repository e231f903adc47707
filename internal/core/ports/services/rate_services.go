package services

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/dto"
)

// RateReaderSvc defines read operations for rate data
type RateReaderSvc interface {
	// ListActiveRates retrieves active rates ordered by currency name.
	ListActiveRates(ctx context.Context) ([]domain.Rate, error)

	// ListRates retrieves all rates including inactive ones.
	ListRates(ctx context.Context) ([]domain.Rate, error)

	// GetRate retrieves a rate whether or not it is active.
	GetRate(ctx context.Context, currencyCode string) (*domain.Rate, error)

	// GetActiveRate retrieves a rate usable for pricing. Inactive rates are reported as not found.
	GetActiveRate(ctx context.Context, currencyCode string) (*domain.Rate, error)
}

// RateWriterSvc defines admin write operations for rate data.
// Every successful call notifies rate subscribers.
type RateWriterSvc interface {
	CreateRate(ctx context.Context, req dto.CreateRateRequest, adminID string) (*domain.Rate, error)
	UpdateRate(ctx context.Context, currencyCode string, req dto.UpdateRateRequest, adminID string) (*domain.Rate, error)
	DeleteRate(ctx context.Context, currencyCode string, adminID string) error
	BulkUpdateRates(ctx context.Context, req dto.BulkUpdateRatesRequest, adminID string) ([]domain.Rate, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}

// RateChangeNotifier is told after a committed rate mutation.
type RateChangeNotifier interface {
	NotifyRatesChanged(ctx context.Context)
}
