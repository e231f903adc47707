package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/utils"
)

// Analytics event names.
const (
	EventOrderCreated     = "order_created"
	EventOrderCancelled   = "order_cancelled"
	EventPaymentSucceeded = "payment_succeeded"
	EventRateAlertReached = "rate_alert_reached"
)

type notificationService struct {
	BaseService
	notifier portssvc.Notifier
	events   portssvc.EventCapturer
	users    portsrepo.UserReader
	jobs     portssvc.JobSubmitter
}

// NotificationServiceOption is a functional option for configuring the notification service
type NotificationServiceOption func(*notificationService)

// WithEventCapturer adds product analytics capture for order events
func WithEventCapturer(events portssvc.EventCapturer) NotificationServiceOption {
	return func(s *notificationService) {
		s.events = events
	}
}

// NewNotificationService creates a notification service. All delivery happens on jobs.
func NewNotificationService(notifier portssvc.Notifier, users portsrepo.UserReader, jobs portssvc.JobSubmitter, options ...NotificationServiceOption) portssvc.NotificationSvc {
	svc := &notificationService{
		notifier: notifier,
		users:    users,
		jobs:     jobs,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.NotificationSvc = (*notificationService)(nil)

// OrderCreated sends the order confirmation by email and SMS.
func (s *notificationService) OrderCreated(ctx context.Context, user domain.User, order domain.Order) {
	total := utils.FormatMoney(order.TotalAmount)
	email := domain.Notification{
		Channel: domain.ChannelEmail,
		To:      user.Email,
		Subject: "Order Confirmation - " + order.OrderNumber,
		Body: fmt.Sprintf("Hi %s, your order %s for %s %s (%s) is confirmed. Total: INR %s.",
			user.Name, order.OrderNumber, utils.FormatMoney(order.AmountForeign), order.CurrencyCode, order.ProductType, total),
	}
	s.send(ctx, "notify:order_created:email", email)

	if user.Phone != "" {
		sms := domain.Notification{
			Channel: domain.ChannelSMS,
			To:      user.Phone,
			Body:    fmt.Sprintf("Your order %s has been confirmed. We'll update you on the progress. Thank you!", order.OrderNumber),
		}
		s.send(ctx, "notify:order_created:sms", sms)
	}

	s.capture(ctx, order.UserID, EventOrderCreated, order)
}

// OrderCancelled tells the customer their order was cancelled.
func (s *notificationService) OrderCancelled(ctx context.Context, order domain.Order) {
	s.sendToOwner(ctx, "notify:order_cancelled", order, "Order Cancelled - "+order.OrderNumber,
		fmt.Sprintf("Your order %s has been cancelled.", order.OrderNumber))
	s.capture(ctx, order.UserID, EventOrderCancelled, order)
}

// PaymentSucceeded confirms a received payment.
func (s *notificationService) PaymentSucceeded(ctx context.Context, order domain.Order) {
	s.sendToOwner(ctx, "notify:payment_succeeded", order, "Payment Received - "+order.OrderNumber,
		fmt.Sprintf("We have received your payment of INR %s for order %s.", utils.FormatMoney(order.TotalAmount), order.OrderNumber))
	s.capture(ctx, order.UserID, EventPaymentSucceeded, order)
}

// RateAlertReached tells the alert owner, on each channel they picked, that the rate hit their target.
func (s *notificationService) RateAlertReached(ctx context.Context, alert domain.RateAlert, rate domain.Rate) {
	job := "notify:rate_alert:" + alert.AlertID
	accepted := s.jobs.Submit(job, func(jobCtx context.Context) error {
		user, err := s.users.FindUserByID(jobCtx, alert.UserID)
		if err != nil {
			return fmt.Errorf("failed to load recipient %s: %w", alert.UserID, err)
		}
		var errs []error
		for _, n := range rateAlertMessages(*user, alert, rate) {
			if err := s.notifier.Send(jobCtx, n); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
	if !accepted {
		s.LogInfo(ctx, "Notification dropped", slog.String("job", job))
	}

	if s.events != nil {
		props := map[string]any{
			"alert_id":      alert.AlertID,
			"currency_code": alert.CurrencyCode,
			"target_rate":   alert.TargetRate.String(),
			"sell_rate":     rate.SellRate.String(),
		}
		if !s.jobs.Submit("analytics:"+EventRateAlertReached, func(context.Context) error {
			return s.events.Enqueue(alert.UserID, EventRateAlertReached, props)
		}) {
			s.LogInfo(ctx, "Analytics event dropped", slog.String("event", EventRateAlertReached))
		}
	}
}

// rateAlertMessages renders one message per channel of the alert. SMS is skipped without a phone.
func rateAlertMessages(user domain.User, alert domain.RateAlert, rate domain.Rate) []domain.Notification {
	var out []domain.Notification
	for _, ch := range alert.AlertType.Channels() {
		switch ch {
		case domain.ChannelEmail:
			out = append(out, domain.Notification{
				Channel: domain.ChannelEmail,
				To:      user.Email,
				Subject: "Rate Alert: " + alert.CurrencyCode,
				Body: fmt.Sprintf("The %s rate has reached your target. Current Rate: INR %s. Your Target: INR %s.",
					alert.CurrencyCode, rate.SellRate.String(), alert.TargetRate.String()),
			})
		case domain.ChannelSMS:
			if user.Phone == "" {
				continue
			}
			out = append(out, domain.Notification{
				Channel: domain.ChannelSMS,
				To:      user.Phone,
				Body:    fmt.Sprintf("Rate Alert: %s is now at INR %s", alert.CurrencyCode, rate.SellRate.String()),
			})
		}
	}
	return out
}

func (s *notificationService) send(ctx context.Context, job string, n domain.Notification) {
	if !s.jobs.Submit(job, func(jobCtx context.Context) error {
		return s.notifier.Send(jobCtx, n)
	}) {
		s.LogInfo(ctx, "Notification dropped", slog.String("job", job))
	}
}

// sendToOwner resolves the order owner's email inside the job so the caller does no extra reads.
func (s *notificationService) sendToOwner(ctx context.Context, job string, order domain.Order, subject, body string) {
	accepted := s.jobs.Submit(job, func(jobCtx context.Context) error {
		user, err := s.users.FindUserByID(jobCtx, order.UserID)
		if err != nil {
			return fmt.Errorf("failed to load recipient %s: %w", order.UserID, err)
		}
		return s.notifier.Send(jobCtx, domain.Notification{
			Channel: domain.ChannelEmail,
			To:      user.Email,
			Subject: subject,
			Body:    body,
		})
	})
	if !accepted {
		s.LogInfo(ctx, "Notification dropped", slog.String("job", job))
	}
}

func (s *notificationService) capture(ctx context.Context, distinctID, event string, order domain.Order) {
	if s.events == nil {
		return
	}
	props := map[string]any{
		"order_id":      order.OrderID,
		"order_number":  order.OrderNumber,
		"product_type":  string(order.ProductType),
		"currency_code": order.CurrencyCode,
		"total_amount":  utils.FormatMoney(order.TotalAmount),
		"status":        string(order.Status),
	}
	if !s.jobs.Submit("analytics:"+event, func(context.Context) error {
		return s.events.Enqueue(distinctID, event, props)
	}) {
		s.LogInfo(ctx, "Analytics event dropped", slog.String("event", event))
	}
}
