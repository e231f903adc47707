package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
)

const entityRate = "rate"

type rateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
	notifier portssvc.RateChangeNotifier
	alerts   portssvc.RateAlertEvaluator
}

// RateServiceOption is a functional option for configuring the rate service
type RateServiceOption func(*rateService)

// WithRateChangeNotifier sets who is told after a rate mutation commits.
func WithRateChangeNotifier(n portssvc.RateChangeNotifier) RateServiceOption {
	return func(s *rateService) {
		s.notifier = n
	}
}

// WithRateAlertEvaluator checks waiting rate alerts against every written rate.
func WithRateAlertEvaluator(e portssvc.RateAlertEvaluator) RateServiceOption {
	return func(s *rateService) {
		s.alerts = e
	}
}

// WithRateAuditor adds the audit recorder
func WithRateAuditor(a portssvc.AuditSvc) RateServiceOption {
	return func(s *rateService) {
		s.Auditor = a
	}
}

// NewRateService creates a new rate service with the provided options
func NewRateService(repo portsrepo.RateRepositoryFacade, options ...RateServiceOption) portssvc.RateSvcFacade {
	svc := &rateService{rateRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) ListActiveRates(ctx context.Context) ([]domain.Rate, error) {
	rates, err := s.rateRepo.ListActiveRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active rates")
		return nil, err
	}
	if rates == nil {
		return []domain.Rate{}, nil
	}
	return rates, nil
}

func (s *rateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rates")
		return nil, err
	}
	if rates == nil {
		return []domain.Rate{}, nil
	}
	return rates, nil
}

func (s *rateService) GetRate(ctx context.Context, currencyCode string) (*domain.Rate, error) {
	rate, err := s.rateRepo.FindRateByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: rate for currency %s", apperrors.ErrNotFound, currencyCode)
		}
		s.LogError(ctx, err, "Failed to get rate", slog.String("currency_code", currencyCode))
		return nil, err
	}
	return rate, nil
}

func (s *rateService) GetActiveRate(ctx context.Context, currencyCode string) (*domain.Rate, error) {
	rate, err := s.GetRate(ctx, currencyCode)
	if err != nil {
		return nil, err
	}
	if !rate.IsActive {
		return nil, fmt.Errorf("%w: rate for currency %s is not available", apperrors.ErrNotFound, currencyCode)
	}
	return rate, nil
}

func (s *rateService) CreateRate(ctx context.Context, req dto.CreateRateRequest, adminID string) (*domain.Rate, error) {
	now := time.Now().UTC()
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	rate := domain.Rate{
		CurrencyCode: req.CurrencyCode.String(),
		CurrencyName: req.CurrencyName,
		BaseRate:     req.BaseRate,
		BuyRate:      req.BuyRate,
		SellRate:     req.SellRate,
		Markup:       req.Markup,
		IsActive:     isActive,
		LastUpdated:  now,
		AuditFields:  domain.NewAuditFields(adminID, now),
	}
	if err := rate.ValidateBand(); err != nil {
		return nil, err
	}

	if err := s.rateRepo.SaveRate(ctx, rate); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: rate for currency %s already exists", apperrors.ErrDuplicate, rate.CurrencyCode)
		}
		s.LogError(ctx, err, "Failed to save rate", slog.String("currency_code", rate.CurrencyCode))
		return nil, err
	}

	s.afterMutation(ctx, adminID, rate.CurrencyCode, "create")
	s.evaluateAlerts(ctx, rate)
	s.LogInfo(ctx, "Rate created", slog.String("currency_code", rate.CurrencyCode))
	return &rate, nil
}

func (s *rateService) UpdateRate(ctx context.Context, currencyCode string, req dto.UpdateRateRequest, adminID string) (*domain.Rate, error) {
	current, err := s.GetRate(ctx, currencyCode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := req.ToRateUpdate().Apply(*current)
	updated.LastUpdated = now
	updated.Touch(adminID, now)
	if err := updated.ValidateBand(); err != nil {
		return nil, err
	}

	if err := s.rateRepo.UpdateRate(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update rate", slog.String("currency_code", currencyCode))
		return nil, err
	}

	s.afterMutation(ctx, adminID, currencyCode, "update")
	s.evaluateAlerts(ctx, updated)
	s.LogInfo(ctx, "Rate updated", slog.String("currency_code", currencyCode))
	return &updated, nil
}

func (s *rateService) DeleteRate(ctx context.Context, currencyCode string, adminID string) error {
	if err := s.rateRepo.DeleteRate(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: rate for currency %s", apperrors.ErrNotFound, currencyCode)
		}
		s.LogError(ctx, err, "Failed to delete rate", slog.String("currency_code", currencyCode))
		return err
	}

	s.afterMutation(ctx, adminID, currencyCode, "delete")
	s.LogInfo(ctx, "Rate deleted", slog.String("currency_code", currencyCode))
	return nil
}

func (s *rateService) BulkUpdateRates(ctx context.Context, req dto.BulkUpdateRatesRequest, adminID string) ([]domain.Rate, error) {
	updates := req.ToBulkRateUpdates()
	seen := make(map[string]bool, len(updates))
	for _, u := range updates {
		if seen[u.CurrencyCode] {
			return nil, fmt.Errorf("%w: currency %s appears more than once", apperrors.ErrValidation, u.CurrencyCode)
		}
		seen[u.CurrencyCode] = true
		candidate := domain.Rate{CurrencyCode: u.CurrencyCode, BaseRate: u.BaseRate, BuyRate: u.BuyRate, SellRate: u.SellRate}
		if err := candidate.ValidateBand(); err != nil {
			return nil, err
		}
	}

	rates, err := s.rateRepo.BulkUpdateRates(ctx, updates, adminID)
	if err != nil {
		s.LogError(ctx, err, "Bulk rate update failed", slog.Int("count", len(updates)))
		return nil, err
	}

	codes := make([]string, len(rates))
	for i, r := range rates {
		codes[i] = r.CurrencyCode
	}
	s.notify(ctx)
	s.evaluateAlerts(ctx, rates...)
	s.RecordAudit(ctx, adminID, domain.AuditRateChanged, entityRate, "bulk", map[string]any{"op": "bulk_update", "currencies": codes})
	s.LogInfo(ctx, "Rates bulk updated", slog.Int("count", len(rates)))
	return rates, nil
}

func (s *rateService) afterMutation(ctx context.Context, adminID, currencyCode, op string) {
	s.notify(ctx)
	s.RecordAudit(ctx, adminID, domain.AuditRateChanged, entityRate, currencyCode, map[string]any{"op": op})
}

func (s *rateService) notify(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.NotifyRatesChanged(ctx)
	}
}

func (s *rateService) evaluateAlerts(ctx context.Context, rates ...domain.Rate) {
	if s.alerts == nil {
		return
	}
	for _, r := range rates {
		s.alerts.EvaluateRate(ctx, r)
	}
}
