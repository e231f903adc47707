package services

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/dto"
)

// OrderReaderSvc defines customer read operations for orders
type OrderReaderSvc interface {
	// GetOrder retrieves an order owned by userID.
	GetOrder(ctx context.Context, orderID, userID string) (*domain.Order, error)

	// ListMyOrders retrieves a page of the user's orders and the total count.
	ListMyOrders(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, int, error)
}

// OrderWriterSvc defines customer write operations for orders
type OrderWriterSvc interface {
	// CreateOrder prices the request server-side and persists the order snapshot.
	CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (*domain.Order, error)

	// CancelOrder cancels an order owned by userID while it is still cancellable.
	CancelOrder(ctx context.Context, orderID, userID string) (*domain.Order, error)
}

// OrderAdminSvc defines back-office operations for orders
type OrderAdminSvc interface {
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, adminID string) (*domain.Order, error)
	AssignPartner(ctx context.Context, orderID, partnerID, adminID string) (*domain.Order, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
	OrderAdminSvc
}
