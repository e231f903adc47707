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
	"github.com/google/uuid"
)

type rateAlertService struct {
	BaseService
	alertRepo     portsrepo.RateAlertRepositoryFacade
	rateRepo      portsrepo.RateReader
	jobs          portssvc.JobSubmitter
	notifications portssvc.NotificationSvc
	now           func() time.Time
}

// RateAlertServiceOption is a functional option for configuring the rate alert service
type RateAlertServiceOption func(*rateAlertService)

// WithRateAlertNotifications sets who tells the customer that an alert fired.
func WithRateAlertNotifications(n portssvc.NotificationSvc) RateAlertServiceOption {
	return func(s *rateAlertService) {
		s.notifications = n
	}
}

// WithRateAlertClock overrides the clock used for creation and trigger times
func WithRateAlertClock(now func() time.Time) RateAlertServiceOption {
	return func(s *rateAlertService) {
		s.now = now
	}
}

// NewRateAlertService creates a rate alert service. Evaluation runs on jobs.
func NewRateAlertService(alertRepo portsrepo.RateAlertRepositoryFacade, rateRepo portsrepo.RateReader, jobs portssvc.JobSubmitter, options ...RateAlertServiceOption) portssvc.RateAlertSvcFacade {
	svc := &rateAlertService{
		alertRepo: alertRepo,
		rateRepo:  rateRepo,
		jobs:      jobs,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateAlertSvcFacade = (*rateAlertService)(nil)

func (s *rateAlertService) CreateRateAlert(ctx context.Context, userID string, req dto.CreateRateAlertRequest) (*domain.RateAlert, error) {
	alertType := req.AlertType
	if alertType == "" {
		alertType = domain.AlertByEmail
	}
	alert := domain.RateAlert{
		AlertID:      uuid.NewString(),
		UserID:       userID,
		CurrencyCode: req.CurrencyCode.String(),
		TargetRate:   req.TargetRate,
		AlertType:    alertType,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := alert.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.rateRepo.FindRateByCode(ctx, alert.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, alert.CurrencyCode)
		}
		s.LogError(ctx, err, "Failed to look up alert currency", slog.String("currency_code", alert.CurrencyCode))
		return nil, err
	}

	if err := s.alertRepo.SaveRateAlert(ctx, alert); err != nil {
		s.LogError(ctx, err, "Failed to save rate alert", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Rate alert created",
		slog.String("alert_id", alert.AlertID),
		slog.String("currency_code", alert.CurrencyCode))
	return &alert, nil
}

func (s *rateAlertService) ListMyAlerts(ctx context.Context, userID string) ([]domain.RateAlert, error) {
	alerts, err := s.alertRepo.ListRateAlertsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rate alerts", slog.String("user_id", userID))
		return nil, err
	}
	if alerts == nil {
		return []domain.RateAlert{}, nil
	}
	return alerts, nil
}

func (s *rateAlertService) DeleteRateAlert(ctx context.Context, alertID, userID string) error {
	if _, err := uuid.Parse(alertID); err != nil {
		return fmt.Errorf("%w: rate alert %s", apperrors.ErrNotFound, alertID)
	}
	alert, err := s.alertRepo.FindRateAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: rate alert %s", apperrors.ErrNotFound, alertID)
		}
		s.LogError(ctx, err, "Failed to find rate alert", slog.String("alert_id", alertID))
		return err
	}
	if alert.UserID != userID {
		return fmt.Errorf("%w: rate alert does not belong to the user", apperrors.ErrForbidden)
	}

	if err := s.alertRepo.DeleteRateAlert(ctx, alertID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: rate alert %s", apperrors.ErrNotFound, alertID)
		}
		s.LogError(ctx, err, "Failed to delete rate alert", slog.String("alert_id", alertID))
		return err
	}
	s.LogInfo(ctx, "Rate alert deleted", slog.String("alert_id", alertID))
	return nil
}

// EvaluateRate fires every waiting alert the rate satisfies. The work happens on a job;
// an alert that another evaluation already claimed is skipped.
func (s *rateAlertService) EvaluateRate(ctx context.Context, rate domain.Rate) {
	if !rate.IsActive {
		return
	}
	job := "alerts:evaluate:" + rate.CurrencyCode
	if !s.jobs.Submit(job, func(jobCtx context.Context) error {
		return s.evaluate(jobCtx, rate)
	}) {
		s.LogInfo(ctx, "Rate alert evaluation dropped", slog.String("currency_code", rate.CurrencyCode))
	}
}

func (s *rateAlertService) evaluate(ctx context.Context, rate domain.Rate) error {
	alerts, err := s.alertRepo.ListActiveAlertsByCurrency(ctx, rate.CurrencyCode)
	if err != nil {
		return fmt.Errorf("failed to load alerts for %s: %w", rate.CurrencyCode, err)
	}

	var errs []error
	for _, alert := range alerts {
		if !alert.ReachedBy(rate) {
			continue
		}
		at := s.now()
		if err := s.alertRepo.MarkAlertTriggered(ctx, alert.AlertID, at); err != nil {
			if !errors.Is(err, apperrors.ErrInvalidState) {
				errs = append(errs, err)
			}
			continue
		}
		alert.IsActive = false
		alert.TriggeredAt = &at
		if s.notifications != nil {
			s.notifications.RateAlertReached(ctx, alert, rate)
		}
	}
	return errors.Join(errs...)
}
