package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/forex_marketplace/internal/models"
	"github.com/SscSPs/forex_marketplace/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `order_id, order_number, user_id, product_type, currency_code, amount_foreign, exchange_rate,
	amount_inr, commission, taxes, delivery_charge, total_amount, status, payment_status, delivery_type,
	address_id, partner_id, notes, metadata, created_at, updated_at`

// Only insertOrderSQL writes the pricing columns; every later statement leaves them alone.
const (
	insertOrderSQL = `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);`

	transitionOrderStatusSQL = `
		UPDATE orders SET status = $3, updated_at = $4
		WHERE order_id = $1 AND status = ANY($2)
		RETURNING ` + orderColumns + `;`

	assignPartnerSQL = `
		UPDATE orders SET partner_id = $2, updated_at = $3
		WHERE order_id = $1 AND status NOT IN ('COMPLETED', 'CANCELLED', 'REFUNDED')
		RETURNING ` + orderColumns + `;`
)

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for orders.
func newPgxOrderRepository(pool *pgxpool.Pool) *PgxOrderRepository {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.OrderNumber,
		&m.UserID,
		&m.ProductType,
		&m.CurrencyCode,
		&m.AmountForeign,
		&m.ExchangeRate,
		&m.AmountINR,
		&m.Commission,
		&m.Taxes,
		&m.DeliveryCharge,
		&m.TotalAmount,
		&m.Status,
		&m.PaymentStatus,
		&m.DeliveryType,
		&m.AddressID,
		&m.PartnerID,
		&m.Notes,
		&m.Metadata,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func findOrder(ctx context.Context, q rowsQuerier, orderID string, forUpdate bool) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := scanOrder(q.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}
	order := mapping.ToDomainOrder(m)
	return &order, nil
}

// SaveOrder inserts a new order with its pricing snapshot.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	_, err := r.Pool.Exec(ctx, insertOrderSQL,
		m.OrderID,
		m.OrderNumber,
		m.UserID,
		m.ProductType,
		m.CurrencyCode,
		m.AmountForeign,
		m.ExchangeRate,
		m.AmountINR,
		m.Commission,
		m.Taxes,
		m.DeliveryCharge,
		m.TotalAmount,
		m.Status,
		m.PaymentStatus,
		m.DeliveryType,
		m.AddressID,
		m.PartnerID,
		m.Notes,
		m.Metadata,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save order %s: %w", m.OrderNumber, err)
	}
	return nil
}

// FindOrderByID retrieves an order by its ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return findOrder(ctx, r.Pool, orderID, false)
}

func (r *PgxOrderRepository) listOrders(ctx context.Context, where string, args []any, page domain.Page) ([]domain.Order, int, error) {
	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM orders %s ORDER BY created_at DESC, order_id LIMIT $%d OFFSET $%d;`, orderColumns, where, n+1, n+2)
	rows, err := r.Pool.Query(ctx, query, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	modelOrders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan orders: %w", err)
	}
	return mapping.ToDomainOrderSlice(modelOrders), total, nil
}

// ListOrdersByUser retrieves a page of a user's orders, newest first.
func (r *PgxOrderRepository) ListOrdersByUser(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, int, error) {
	where := `WHERE user_id = $1`
	args := []any{userID}
	if filter.Status != nil {
		where += ` AND status = $2`
		args = append(args, string(*filter.Status))
	}
	return r.listOrders(ctx, where, args, filter.Page)
}

// ListOrders retrieves a page of all orders, newest first.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error) {
	where := ``
	var args []any
	if filter.Status != nil {
		where = `WHERE status = $1`
		args = append(args, string(*filter.Status))
	}
	return r.listOrders(ctx, where, args, filter.Page)
}

// TransitionOrderStatus performs a compare-and-set on the order status.
func (r *PgxOrderRepository) TransitionOrderStatus(ctx context.Context, orderID string, from []domain.OrderStatus, next domain.OrderStatus, at time.Time) (*domain.Order, error) {
	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	m, err := scanOrder(r.Pool.QueryRow(ctx, transitionOrderStatusSQL, orderID, allowed, string(next), at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, findErr := r.FindOrderByID(ctx, orderID); findErr != nil {
				return nil, findErr
			}
			return nil, apperrors.NewInvalidStateError(fmt.Sprintf("order %s cannot move to %s", orderID, next))
		}
		return nil, fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}
	order := mapping.ToDomainOrder(m)
	return &order, nil
}

// AssignPartner sets the fulfilment partner of a non-terminal order.
func (r *PgxOrderRepository) AssignPartner(ctx context.Context, orderID, partnerID string, at time.Time) (*domain.Order, error) {
	m, err := scanOrder(r.Pool.QueryRow(ctx, assignPartnerSQL, orderID, partnerID, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, findErr := r.FindOrderByID(ctx, orderID); findErr != nil {
				return nil, findErr
			}
			return nil, apperrors.NewInvalidStateError("partner cannot be assigned to a closed order")
		}
		return nil, fmt.Errorf("failed to assign partner to order %s: %w", orderID, err)
	}
	order := mapping.ToDomainOrder(m)
	return &order, nil
}
