package services

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
)

// JobSubmitter runs best-effort background work. Submit never blocks and reports
// whether the job was accepted.
type JobSubmitter interface {
	Submit(name string, job func(ctx context.Context) error) bool
}

// AuditSvc records audit entries without affecting the caller.
type AuditSvc interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

// NotificationSvc tells users and analytics about order and rate events without affecting the caller.
type NotificationSvc interface {
	OrderCreated(ctx context.Context, user domain.User, order domain.Order)
	OrderCancelled(ctx context.Context, order domain.Order)
	PaymentSucceeded(ctx context.Context, order domain.Order)
	RateAlertReached(ctx context.Context, alert domain.RateAlert, rate domain.Rate)
}

// Notifier delivers a rendered notification (email or SMS).
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

// EventCapturer sends product analytics events.
type EventCapturer interface {
	Enqueue(distinctID string, event string, properties map[string]any) error
}
