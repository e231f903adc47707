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
	entityTransaction = "transaction"
	paymentCurrency   = "INR"
)

type paymentService struct {
	BaseService
	orderRepo     portsrepo.OrderReader
	txnRepo       portsrepo.TransactionRepositoryFacade
	gateway       portssvc.PaymentGateway
	notifications portssvc.NotificationSvc
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithPaymentNotifications adds the customer notification service
func WithPaymentNotifications(n portssvc.NotificationSvc) PaymentServiceOption {
	return func(s *paymentService) {
		s.notifications = n
	}
}

// WithPaymentAuditor adds the audit recorder
func WithPaymentAuditor(a portssvc.AuditSvc) PaymentServiceOption {
	return func(s *paymentService) {
		s.Auditor = a
	}
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(orderRepo portsrepo.OrderReader, txnRepo portsrepo.TransactionRepositoryFacade, gateway portssvc.PaymentGateway, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		orderRepo: orderRepo,
		txnRepo:   txnRepo,
		gateway:   gateway,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// InitiatePayment opens a gateway payment for the order total and records the attempt.
func (s *paymentService) InitiatePayment(ctx context.Context, orderID, userID string) (*domain.PaymentIntent, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order does not belong to the user", apperrors.ErrForbidden)
	}
	if order.PaymentStatus == domain.PaymentSuccess {
		return nil, fmt.Errorf("%w: order is already paid", apperrors.ErrInvalidState)
	}
	if order.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: order in status %s cannot be paid", apperrors.ErrInvalidState, order.Status)
	}

	gwOrder, err := s.gateway.CreateOrder(ctx, utils.ToMinorUnits(order.TotalAmount), paymentCurrency, order.OrderNumber)
	if err != nil {
		s.LogError(ctx, err, "Gateway order creation failed", slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to open payment with gateway: %w", err)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		OrderID:        order.OrderID,
		UserID:         userID,
		Amount:         order.TotalAmount,
		Currency:       paymentCurrency,
		Gateway:        s.gateway.Name(),
		GatewayOrderID: gwOrder.GatewayOrderID,
		Status:         domain.TransactionInitiated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.txnRepo.SaveInitiatedTransaction(ctx, txn); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to record payment attempt", slog.String("order_id", orderID))
		}
		return nil, err
	}

	s.RecordAudit(ctx, userID, domain.AuditPaymentInitiated, entityTransaction, txn.TransactionID, map[string]any{
		"orderID":        order.OrderID,
		"gatewayOrderID": gwOrder.GatewayOrderID,
	})
	s.LogInfo(ctx, "Payment initiated",
		slog.String("order_id", order.OrderID),
		slog.String("transaction_id", txn.TransactionID))

	return &domain.PaymentIntent{
		Transaction:  txn,
		GatewayOrder: *gwOrder,
		OrderNumber:  order.OrderNumber,
		KeyID:        s.gateway.KeyID(),
	}, nil
}

// VerifyPayment confirms a checkout. The signature is checked before anything is read.
func (s *paymentService) VerifyPayment(ctx context.Context, userID string, req dto.VerifyPaymentRequest) (*domain.Order, error) {
	if !s.gateway.Verify(req.GatewayOrderID, req.GatewayPaymentID, req.Signature) {
		s.LogInfo(ctx, "Payment signature rejected", slog.String("gateway_order_id", req.GatewayOrderID))
		return nil, fmt.Errorf("%w: invalid payment signature", apperrors.ErrValidation)
	}

	txn, err := s.txnRepo.FindTransactionByGatewayOrderID(ctx, req.GatewayOrderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: transaction for gateway order %s", apperrors.ErrNotFound, req.GatewayOrderID)
		}
		return nil, err
	}
	if txn.UserID != userID {
		return nil, fmt.Errorf("%w: transaction does not belong to the user", apperrors.ErrForbidden)
	}
	if txn.Status != domain.TransactionInitiated {
		return nil, fmt.Errorf("%w: payment attempt is already %s", apperrors.ErrInvalidState, txn.Status)
	}

	order, err := s.txnRepo.CompletePayment(ctx, txn.TransactionID, req.GatewayPaymentID, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to complete payment", slog.String("transaction_id", txn.TransactionID))
		}
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.PaymentSucceeded(ctx, *order)
	}
	s.RecordAudit(ctx, userID, domain.AuditPaymentSuccess, entityTransaction, txn.TransactionID, map[string]any{
		"orderID":          order.OrderID,
		"gatewayPaymentID": req.GatewayPaymentID,
	})
	s.LogInfo(ctx, "Payment verified",
		slog.String("order_id", order.OrderID),
		slog.String("transaction_id", txn.TransactionID))
	return order, nil
}

func (s *paymentService) ListMyTransactions(ctx context.Context, userID string, page domain.Page) ([]domain.Transaction, int, error) {
	txns, total, err := s.txnRepo.ListTransactionsByUser(ctx, userID, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, 0, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, total, nil
}
