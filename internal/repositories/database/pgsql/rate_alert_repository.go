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

const rateAlertColumns = `alert_id, user_id, currency_code, target_rate, alert_type, is_active, triggered_at, created_at`

const (
	insertRateAlertSQL = `
		INSERT INTO rate_alerts (` + rateAlertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	// An alert fires at most once: only the first caller sees a row change.
	markAlertTriggeredSQL = `
		UPDATE rate_alerts SET is_active = FALSE, triggered_at = $2
		WHERE alert_id = $1 AND is_active;`
)

type PgxRateAlertRepository struct {
	BaseRepository
}

func newPgxRateAlertRepository(pool *pgxpool.Pool) *PgxRateAlertRepository {
	return &PgxRateAlertRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateAlertRepositoryFacade = (*PgxRateAlertRepository)(nil)

func scanRateAlert(row pgx.Row) (models.RateAlert, error) {
	var m models.RateAlert
	err := row.Scan(
		&m.AlertID,
		&m.UserID,
		&m.CurrencyCode,
		&m.TargetRate,
		&m.AlertType,
		&m.IsActive,
		&m.TriggeredAt,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxRateAlertRepository) SaveRateAlert(ctx context.Context, alert domain.RateAlert) error {
	m := mapping.ToModelRateAlert(alert)
	_, err := r.Pool.Exec(ctx, insertRateAlertSQL,
		m.AlertID, m.UserID, m.CurrencyCode, m.TargetRate, m.AlertType, m.IsActive, m.TriggeredAt, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save rate alert: %w", err)
	}
	return nil
}

func (r *PgxRateAlertRepository) FindRateAlertByID(ctx context.Context, alertID string) (*domain.RateAlert, error) {
	m, err := scanRateAlert(r.Pool.QueryRow(ctx, `SELECT `+rateAlertColumns+` FROM rate_alerts WHERE alert_id = $1;`, alertID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate alert %s: %w", alertID, err)
	}
	alert := mapping.ToDomainRateAlert(m)
	return &alert, nil
}

func (r *PgxRateAlertRepository) ListRateAlertsByUser(ctx context.Context, userID string) ([]domain.RateAlert, error) {
	return r.list(ctx, `SELECT `+rateAlertColumns+` FROM rate_alerts WHERE user_id = $1 ORDER BY created_at DESC;`, userID)
}

func (r *PgxRateAlertRepository) ListActiveAlertsByCurrency(ctx context.Context, currencyCode string) ([]domain.RateAlert, error) {
	return r.list(ctx, `SELECT `+rateAlertColumns+` FROM rate_alerts WHERE currency_code = $1 AND is_active ORDER BY created_at;`, currencyCode)
}

func (r *PgxRateAlertRepository) list(ctx context.Context, query string, arg string) ([]domain.RateAlert, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate alerts: %w", err)
	}
	defer rows.Close()

	modelAlerts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RateAlert, error) {
		return scanRateAlert(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rate alerts: %w", err)
	}
	return mapping.ToDomainRateAlertSlice(modelAlerts), nil
}

func (r *PgxRateAlertRepository) DeleteRateAlert(ctx context.Context, alertID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rate_alerts WHERE alert_id = $1;`, alertID)
	if err != nil {
		return fmt.Errorf("failed to delete rate alert %s: %w", alertID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRateAlertRepository) MarkAlertTriggered(ctx context.Context, alertID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, markAlertTriggeredSQL, alertID, at)
	if err != nil {
		return fmt.Errorf("failed to trigger rate alert %s: %w", alertID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewInvalidStateError("rate alert already triggered")
	}
	return nil
}
