package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const entityOffer = "offer"

type offerService struct {
	BaseService
	offerRepo portsrepo.OfferRepositoryFacade
	now       func() time.Time
}

// OfferServiceOption is a functional option for configuring the offer service
type OfferServiceOption func(*offerService)

// WithOfferAuditor adds the audit recorder
func WithOfferAuditor(a portssvc.AuditSvc) OfferServiceOption {
	return func(s *offerService) {
		s.Auditor = a
	}
}

// WithOfferClock overrides the clock used for validity windows
func WithOfferClock(now func() time.Time) OfferServiceOption {
	return func(s *offerService) {
		s.now = now
	}
}

// NewOfferService creates a new offer service with the provided options
func NewOfferService(repo portsrepo.OfferRepositoryFacade, options ...OfferServiceOption) portssvc.OfferSvcFacade {
	svc := &offerService{
		offerRepo: repo,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OfferSvcFacade = (*offerService)(nil)

func normalizeOfferCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *offerService) ListActiveOffers(ctx context.Context) ([]domain.Offer, error) {
	offers, err := s.offerRepo.ListActiveOffers(ctx, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to list active offers")
		return nil, err
	}
	if offers == nil {
		return []domain.Offer{}, nil
	}
	return offers, nil
}

func (s *offerService) GetOfferByCode(ctx context.Context, code string) (*domain.Offer, error) {
	code = normalizeOfferCode(code)
	offer, err := s.offerRepo.FindOfferByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: offer %s", apperrors.ErrNotFound, code)
		}
		s.LogError(ctx, err, "Failed to find offer", slog.String("code", code))
		return nil, err
	}
	return offer, nil
}

// ValidateOffer checks that the offer applies to amount now and computes its effect.
// It never consumes a use of the offer.
func (s *offerService) ValidateOffer(ctx context.Context, code string, amount decimal.Decimal) (*domain.OfferResult, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	offer, err := s.GetOfferByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := offer.CheckEligibility(amount, s.now()); err != nil {
		s.LogDebug(ctx, "Offer not applicable", slog.String("code", offer.Code), slog.String("reason", err.Error()))
		return nil, err
	}

	result := offer.Apply(amount)
	return &result, nil
}

// RedeemOffer consumes one use of the offer. The usage limit is enforced by the
// repository in the same statement as the increment.
func (s *offerService) RedeemOffer(ctx context.Context, code string, userID string) (*domain.Offer, error) {
	offer, err := s.GetOfferByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !offer.IsActive || now.Before(offer.ValidFrom) || now.After(offer.ValidUntil) {
		return nil, fmt.Errorf("%w: offer %s is not currently available", apperrors.ErrInvalidState, offer.Code)
	}

	redeemed, err := s.offerRepo.IncrementOfferUsage(ctx, offer.Code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to redeem offer", slog.String("code", offer.Code))
		}
		return nil, err
	}

	s.RecordAudit(ctx, userID, domain.AuditOfferRedeemed, entityOffer, redeemed.OfferID, map[string]any{
		"code":       redeemed.Code,
		"usageCount": redeemed.UsageCount,
	})
	s.LogInfo(ctx, "Offer redeemed", slog.String("code", redeemed.Code), slog.Int("usage_count", redeemed.UsageCount))
	return redeemed, nil
}
