package services

import (
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/platform/config"
	"github.com/SscSPs/forex_marketplace/internal/utils/pricing"
)

// Dependencies are the infrastructure collaborators the services need beyond repositories.
type Dependencies struct {
	Jobs         portssvc.JobSubmitter
	Gateway      portssvc.PaymentGateway
	RateNotifier portssvc.RateChangeNotifier
	Notifier     portssvc.Notifier
	Events       portssvc.EventCapturer // optional
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Dependencies) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit and notifications come first since every writer depends on them
	container.Audit = NewAuditService(repos.AuditRepo, deps.Jobs)

	var notificationOpts []NotificationServiceOption
	if deps.Events != nil {
		notificationOpts = append(notificationOpts, WithEventCapturer(deps.Events))
	}
	container.Notification = NewNotificationService(deps.Notifier, repos.UserRepo, deps.Jobs, notificationOpts...)

	container.RateAlert = NewRateAlertService(repos.RateAlertRepo, repos.RateRepo, deps.Jobs,
		WithRateAlertNotifications(container.Notification))

	rateOpts := []RateServiceOption{WithRateAuditor(container.Audit), WithRateAlertEvaluator(container.RateAlert)}
	if deps.RateNotifier != nil {
		rateOpts = append(rateOpts, WithRateChangeNotifier(deps.RateNotifier))
	}
	container.Rate = NewRateService(repos.RateRepo, rateOpts...)

	container.Quote = NewQuoteService(container.Rate, pricing.NewCalculator(cfg.DeliveryCharge))

	container.Order = NewOrderService(
		repos.OrderRepo,
		repos.UserRepo,
		container.Quote,
		WithOrderNotifications(container.Notification),
		WithOrderAuditor(container.Audit),
	)

	container.Offer = NewOfferService(repos.OfferRepo, WithOfferAuditor(container.Audit))

	container.Payment = NewPaymentService(
		repos.OrderRepo,
		repos.TransactionRepo,
		deps.Gateway,
		WithPaymentNotifications(container.Notification),
		WithPaymentAuditor(container.Audit),
	)

	return container
}
