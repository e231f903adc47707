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

const transactionColumns = `transaction_id, order_id, user_id, amount, currency, gateway, gateway_order_id,
	gateway_payment_id, status, created_at, updated_at`

const (
	insertTransactionSQL = `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	// Opening a payment moves a fresh order to PAYMENT_PENDING, the only status that may be paid.
	markPaymentInitiatedSQL = `
		UPDATE orders SET payment_status = $2, status = $3, updated_at = $4
		WHERE order_id = $1
			AND payment_status IN ('PENDING', 'INITIATED', 'FAILED')
			AND status IN ('CREATED', 'KYC_PENDING', 'PAYMENT_PENDING');`

	completeTransactionSQL = `
		UPDATE transactions SET status = 'SUCCESS', gateway_payment_id = $2, updated_at = $3
		WHERE transaction_id = $1 AND status = 'INITIATED'
		RETURNING order_id;`

	settleOrderPaymentSQL = `
		UPDATE orders SET payment_status = $2, status = $3, updated_at = $4
		WHERE order_id = $1
		RETURNING ` + orderColumns + `;`
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OrderID,
		&m.UserID,
		&m.Amount,
		&m.Currency,
		&m.Gateway,
		&m.GatewayOrderID,
		&m.GatewayPaymentID,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveInitiatedTransaction records a new payment attempt and flags the order payment as INITIATED.
func (r *PgxTransactionRepository) SaveInitiatedTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, insertTransactionSQL,
		m.TransactionID,
		m.OrderID,
		m.UserID,
		m.Amount,
		m.Currency,
		m.Gateway,
		m.GatewayOrderID,
		m.GatewayPaymentID,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save transaction for order %s: %w", m.OrderID, err)
	}

	tag, err := tx.Exec(ctx, markPaymentInitiatedSQL,
		m.OrderID, string(domain.PaymentInitiated), string(domain.OrderPaymentPending), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to mark payment initiated for order %s: %w", m.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewInvalidStateError("order is not awaiting payment")
	}

	return r.Commit(ctx, tx)
}

// CompletePayment settles an attempt: the transaction becomes SUCCESS, the order payment
// SUCCESS and the order status PAYMENT_COMPLETED, all or nothing.
func (r *PgxTransactionRepository) CompletePayment(ctx context.Context, transactionID, gatewayPaymentID string, at time.Time) (*domain.Order, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var orderID string
	err = tx.QueryRow(ctx, completeTransactionSQL,
		transactionID, gatewayPaymentID, at,
	).Scan(&orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInvalidStateError("payment attempt is not pending")
		}
		if isUniqueViolation(err) {
			return nil, apperrors.NewInvalidStateError("order is already paid")
		}
		return nil, fmt.Errorf("failed to complete transaction %s: %w", transactionID, err)
	}

	current, err := findOrder(ctx, tx, orderID, true)
	if err != nil {
		return nil, err
	}
	if current.PaymentStatus == domain.PaymentSuccess {
		return nil, apperrors.NewInvalidStateError("order is already paid")
	}

	if !current.Status.CanTransitionTo(domain.OrderPaymentCompleted) {
		return nil, apperrors.NewInvalidStateError(fmt.Sprintf("order in status %s cannot be paid", current.Status))
	}

	m, err := scanOrder(tx.QueryRow(ctx, settleOrderPaymentSQL,
		orderID, string(domain.PaymentSuccess), string(domain.OrderPaymentCompleted), at,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to settle order %s: %w", orderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	order := mapping.ToDomainOrder(m)
	return &order, nil
}

// FindTransactionByGatewayOrderID retrieves a payment attempt by its gateway order reference.
func (r *PgxTransactionRepository) FindTransactionByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.Transaction, error) {
	m, err := scanTransaction(r.Pool.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE gateway_order_id = $1;`, gatewayOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", gatewayOrderID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByUser retrieves a page of a user's payment attempts, newest first.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Transaction, int, error) {
	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE user_id = $1;`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, transaction_id
		LIMIT $2 OFFSET $3;`,
		userID, page.Limit, page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), total, nil
}
