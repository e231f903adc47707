package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves a specific order by its ID.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByUser retrieves a page of a user's orders, newest first, with the total count.
	ListOrdersByUser(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, int, error)

	// ListOrders retrieves a page of all orders for back-office use.
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error)
}

// OrderWriter defines write operations for order data.
// No method rewrites the pricing snapshot of an existing order.
type OrderWriter interface {
	// SaveOrder persists a new order. Returns apperrors.ErrDuplicate on an order number clash.
	SaveOrder(ctx context.Context, order domain.Order) error

	// TransitionOrderStatus moves the order to next only if its current status is one of from.
	// Returns apperrors.ErrInvalidState when no row matched.
	TransitionOrderStatus(ctx context.Context, orderID string, from []domain.OrderStatus, next domain.OrderStatus, at time.Time) (*domain.Order, error)

	// AssignPartner sets the fulfilment partner of an order.
	AssignPartner(ctx context.Context, orderID, partnerID string, at time.Time) (*domain.Order, error)
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
