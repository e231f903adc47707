package services

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/dto"
)

// RateAlertSvc manages a customer's rate alerts.
type RateAlertSvc interface {
	// CreateRateAlert registers an alert on a known currency.
	CreateRateAlert(ctx context.Context, userID string, req dto.CreateRateAlertRequest) (*domain.RateAlert, error)

	// ListMyAlerts returns the user's alerts, newest first.
	ListMyAlerts(ctx context.Context, userID string) ([]domain.RateAlert, error)

	// DeleteRateAlert removes an alert owned by userID.
	DeleteRateAlert(ctx context.Context, alertID, userID string) error
}

// RateAlertEvaluator is told about every rate that was written so waiting alerts can fire.
type RateAlertEvaluator interface {
	EvaluateRate(ctx context.Context, rate domain.Rate)
}

// RateAlertSvcFacade combines the customer and evaluation sides of rate alerts
type RateAlertSvcFacade interface {
	RateAlertSvc
	RateAlertEvaluator
}
