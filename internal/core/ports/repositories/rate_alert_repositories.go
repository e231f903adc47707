package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
)

// RateAlertReader defines read operations for rate alerts
type RateAlertReader interface {
	// FindRateAlertByID returns apperrors.ErrNotFound for unknown ids.
	FindRateAlertByID(ctx context.Context, alertID string) (*domain.RateAlert, error)

	// ListRateAlertsByUser returns a user's alerts, newest first.
	ListRateAlertsByUser(ctx context.Context, userID string) ([]domain.RateAlert, error)

	// ListActiveAlertsByCurrency returns the alerts still waiting on a currency.
	ListActiveAlertsByCurrency(ctx context.Context, currencyCode string) ([]domain.RateAlert, error)
}

// RateAlertWriter defines write operations for rate alerts
type RateAlertWriter interface {
	SaveRateAlert(ctx context.Context, alert domain.RateAlert) error

	// DeleteRateAlert returns apperrors.ErrNotFound when nothing was deleted.
	DeleteRateAlert(ctx context.Context, alertID string) error

	// MarkAlertTriggered deactivates an active alert.
	// Returns apperrors.ErrInvalidState when the alert already fired or is gone.
	MarkAlertTriggered(ctx context.Context, alertID string, at time.Time) error
}

// RateAlertRepositoryFacade combines all rate alert repository interfaces
type RateAlertRepositoryFacade interface {
	RateAlertReader
	RateAlertWriter
}
