package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
)

// OfferReader defines read operations for offer data
type OfferReader interface {
	// FindOfferByCode retrieves an offer by its code.
	FindOfferByCode(ctx context.Context, code string) (*domain.Offer, error)

	// ListActiveOffers retrieves active offers whose window contains at.
	ListActiveOffers(ctx context.Context, at time.Time) ([]domain.Offer, error)
}

// OfferWriter defines write operations for offer data
type OfferWriter interface {
	// IncrementOfferUsage bumps usage_count unless the usage limit is reached.
	// Returns apperrors.ErrInvalidState when the offer is exhausted.
	IncrementOfferUsage(ctx context.Context, code string) (*domain.Offer, error)
}

// OfferRepositoryFacade combines all offer-related repository interfaces
type OfferRepositoryFacade interface {
	OfferReader
	OfferWriter
}
