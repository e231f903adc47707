package services

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OfferReaderSvc defines read operations for offers
type OfferReaderSvc interface {
	ListActiveOffers(ctx context.Context) ([]domain.Offer, error)
	GetOfferByCode(ctx context.Context, code string) (*domain.Offer, error)

	// ValidateOffer checks an offer against amount and computes the adjusted total. It has no side effects.
	ValidateOffer(ctx context.Context, code string, amount decimal.Decimal) (*domain.OfferResult, error)
}

// OfferWriterSvc defines write operations for offers
type OfferWriterSvc interface {
	// RedeemOffer consumes one use of the offer.
	RedeemOffer(ctx context.Context, code string, userID string) (*domain.Offer, error)
}

// OfferSvcFacade combines all offer-related service interfaces
type OfferSvcFacade interface {
	OfferReaderSvc
	OfferWriterSvc
}
