package repositories

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
)

// RateReader defines read operations for rate data
type RateReader interface {
	// FindRateByCode retrieves the rate of a currency, active or not.
	FindRateByCode(ctx context.Context, currencyCode string) (*domain.Rate, error)

	// ListActiveRates retrieves all active rates ordered by currency name.
	ListActiveRates(ctx context.Context) ([]domain.Rate, error)

	// ListRates retrieves every rate including inactive ones.
	ListRates(ctx context.Context) ([]domain.Rate, error)
}

// RateWriter defines write operations for rate data
type RateWriter interface {
	// SaveRate persists a new rate. Returns apperrors.ErrDuplicate when the code exists.
	SaveRate(ctx context.Context, rate domain.Rate) error

	// UpdateRate overwrites the mutable fields of an existing rate.
	UpdateRate(ctx context.Context, rate domain.Rate) error

	// DeleteRate removes a rate.
	DeleteRate(ctx context.Context, currencyCode string) error

	// BulkUpdateRates applies every update in one database transaction and returns the new rows.
	// Any unknown currency or band violation aborts the whole batch.
	BulkUpdateRates(ctx context.Context, updates []domain.BulkRateUpdate, actorID string) ([]domain.Rate, error)
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
