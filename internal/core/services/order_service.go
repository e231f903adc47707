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
	"github.com/SscSPs/forex_marketplace/internal/utils"
	"github.com/google/uuid"
)

const (
	entityOrder = "order"

	// maxOrderNumberAttempts bounds retries after an order number collision.
	maxOrderNumberAttempts = 3
)

type orderService struct {
	BaseService
	orderRepo      portsrepo.OrderRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
	quotes         portssvc.QuoteSvc
	notifications  portssvc.NotificationSvc
	newOrderNumber func(now time.Time) (string, error)
}

// OrderServiceOption is a functional option for configuring the order service
type OrderServiceOption func(*orderService)

// WithOrderNotifications adds the customer notification service
func WithOrderNotifications(n portssvc.NotificationSvc) OrderServiceOption {
	return func(s *orderService) {
		s.notifications = n
	}
}

// WithOrderAuditor adds the audit recorder
func WithOrderAuditor(a portssvc.AuditSvc) OrderServiceOption {
	return func(s *orderService) {
		s.Auditor = a
	}
}

// WithOrderNumberGenerator replaces the order number generator
func WithOrderNumberGenerator(gen func(now time.Time) (string, error)) OrderServiceOption {
	return func(s *orderService) {
		s.newOrderNumber = gen
	}
}

// NewOrderService creates a new order service with the provided options
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, quotes portssvc.QuoteSvc, options ...OrderServiceOption) portssvc.OrderSvcFacade {
	svc := &orderService{
		orderRepo:      orderRepo,
		userRepo:       userRepo,
		quotes:         quotes,
		newOrderNumber: utils.GenerateOrderNumber,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder prices the request server-side and stores the resulting snapshot.
func (s *orderService) CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	metadata, err := domain.NewOrderMetadata(req.Metadata)
	if err != nil {
		return nil, err
	}

	deliveryType := req.DeliveryType
	if deliveryType == "" {
		deliveryType = domain.DeliveryPickup
	}
	if deliveryType == domain.DeliveryDoorstep && req.AddressID == nil {
		return nil, fmt.Errorf("%w: addressID is required for doorstep delivery", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		s.LogError(ctx, err, "Failed to load user for order", slog.String("user_id", userID))
		return nil, err
	}
	if user.KYCStatus != domain.KYCVerified {
		return nil, fmt.Errorf("%w: KYC verification is required before placing an order", apperrors.ErrForbidden)
	}

	if req.AddressID != nil {
		address, err := s.userRepo.FindAddressByID(ctx, *req.AddressID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: address %s", apperrors.ErrNotFound, *req.AddressID)
			}
			return nil, err
		}
		if address.UserID != userID {
			return nil, fmt.Errorf("%w: address does not belong to the user", apperrors.ErrForbidden)
		}
	}

	quoteReq := req.ToQuoteRequest()
	quoteReq.DeliveryType = deliveryType
	quote, err := s.quotes.Quote(ctx, quoteReq)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := domain.Order{
		OrderID:       uuid.NewString(),
		UserID:        userID,
		Status:        domain.OrderCreated,
		PaymentStatus: domain.PaymentPending,
		AddressID:     req.AddressID,
		Notes:         req.Notes,
		Metadata:      metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order.ApplyQuote(*quote)

	if err := s.saveWithFreshNumber(ctx, &order, now); err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.OrderCreated(ctx, *user, order)
	}
	s.RecordAudit(ctx, userID, domain.AuditOrderCreated, entityOrder, order.OrderID, map[string]any{
		"orderNumber": order.OrderNumber,
		"totalAmount": order.TotalAmount.StringFixed(2),
	})
	s.LogInfo(ctx, "Order created",
		slog.String("order_id", order.OrderID),
		slog.String("order_number", order.OrderNumber))
	return &order, nil
}

// saveWithFreshNumber assigns an order number and inserts, retrying on a number collision.
func (s *orderService) saveWithFreshNumber(ctx context.Context, order *domain.Order, now time.Time) error {
	var lastErr error
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		number, err := s.newOrderNumber(now)
		if err != nil {
			return fmt.Errorf("failed to generate order number: %w", err)
		}
		order.OrderNumber = number

		lastErr = s.orderRepo.SaveOrder(ctx, *order)
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, apperrors.ErrDuplicate) {
			s.LogError(ctx, lastErr, "Failed to save order", slog.String("order_id", order.OrderID))
			return lastErr
		}
		s.LogDebug(ctx, "Order number collision, retrying",
			slog.String("order_number", number),
			slog.Int("attempt", attempt))
	}
	s.LogError(ctx, lastErr, "Order number collisions exhausted retries", slog.String("order_id", order.OrderID))
	return fmt.Errorf("could not allocate a unique order number: %w", lastErr)
}

// GetOrder returns the order if it belongs to userID.
func (s *orderService) GetOrder(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order does not belong to the user", apperrors.ErrForbidden)
	}
	return order, nil
}

func (s *orderService) ListMyOrders(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, int, error) {
	orders, total, err := s.orderRepo.ListOrdersByUser(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("user_id", userID))
		return nil, 0, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, total, nil
}

// CancelOrder cancels an order still awaiting payment. The status check and the update
// are a single conditional write, so a concurrent transition is never overwritten.
func (s *orderService) CancelOrder(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if !order.Status.IsCancellable() {
		return nil, fmt.Errorf("%w: order in status %s cannot be cancelled", apperrors.ErrInvalidState, order.Status)
	}

	cancelled, err := s.orderRepo.TransitionOrderStatus(ctx, orderID, domain.CancellableStatuses, domain.OrderCancelled, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to cancel order", slog.String("order_id", orderID))
		}
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.OrderCancelled(ctx, *cancelled)
	}
	s.RecordAudit(ctx, userID, domain.AuditOrderCancelled, entityOrder, orderID, map[string]any{"from": string(order.Status)})
	s.LogInfo(ctx, "Order cancelled", slog.String("order_id", orderID))
	return cancelled, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error) {
	orders, total, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list all orders")
		return nil, 0, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, total, nil
}

// UpdateOrderStatus moves an order along the status machine on behalf of an admin.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, adminID string) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", apperrors.ErrValidation, status)
	}

	current, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: order cannot move from %s to %s", apperrors.ErrInvalidState, current.Status, status)
	}

	updated, err := s.orderRepo.TransitionOrderStatus(ctx, orderID, []domain.OrderStatus{current.Status}, status, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to update order status", slog.String("order_id", orderID))
		}
		return nil, err
	}

	if status == domain.OrderCancelled && s.notifications != nil {
		s.notifications.OrderCancelled(ctx, *updated)
	}
	s.RecordAudit(ctx, adminID, domain.AuditOrderStatusUpdated, entityOrder, orderID, map[string]any{
		"from": string(current.Status),
		"to":   string(status),
	})
	s.LogInfo(ctx, "Order status updated",
		slog.String("order_id", orderID),
		slog.String("from", string(current.Status)),
		slog.String("to", string(status)))
	return updated, nil
}

// AssignPartner attaches an active fulfilment partner to an order.
func (s *orderService) AssignPartner(ctx context.Context, orderID, partnerID, adminID string) (*domain.Order, error) {
	partner, err := s.userRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: partner %s", apperrors.ErrNotFound, partnerID)
		}
		return nil, err
	}
	if !partner.IsActive {
		return nil, fmt.Errorf("%w: partner %s is not active", apperrors.ErrInvalidState, partnerID)
	}

	order, err := s.orderRepo.AssignPartner(ctx, orderID, partnerID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, err
	}

	s.RecordAudit(ctx, adminID, domain.AuditOrderAssigned, entityOrder, orderID, map[string]any{"partnerID": partnerID})
	s.LogInfo(ctx, "Partner assigned", slog.String("order_id", orderID), slog.String("partner_id", partnerID))
	return order, nil
}

func (s *orderService) findOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
		}
		s.LogError(ctx, err, "Failed to find order", slog.String("order_id", orderID))
		return nil, err
	}
	return order, nil
}
