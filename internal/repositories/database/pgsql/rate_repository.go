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

const rateColumns = `currency_code, currency_name, base_rate, buy_rate, sell_rate, markup, is_active, last_updated,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for exchange rates.
func newPgxRateRepository(pool *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

func scanRate(row pgx.Row) (models.Rate, error) {
	var m models.Rate
	err := row.Scan(
		&m.CurrencyCode,
		&m.CurrencyName,
		&m.BaseRate,
		&m.BuyRate,
		&m.SellRate,
		&m.Markup,
		&m.IsActive,
		&m.LastUpdated,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRateRepository) findRate(ctx context.Context, q rowsQuerier, currencyCode string) (*domain.Rate, error) {
	m, err := scanRate(q.QueryRow(ctx, `SELECT `+rateColumns+` FROM rates WHERE currency_code = $1;`, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate %s: %w", currencyCode, err)
	}
	rate := mapping.ToDomainRate(m)
	return &rate, nil
}

// FindRateByCode retrieves a rate by its 3-letter currency code.
func (r *PgxRateRepository) FindRateByCode(ctx context.Context, currencyCode string) (*domain.Rate, error) {
	return r.findRate(ctx, r.Pool, currencyCode)
}

func (r *PgxRateRepository) listRates(ctx context.Context, query string) ([]domain.Rate, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rate, error) {
		return scanRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rates: %w", err)
	}
	return mapping.ToDomainRateSlice(modelRates), nil
}

// ListActiveRates retrieves active rates ordered by currency name.
func (r *PgxRateRepository) ListActiveRates(ctx context.Context) ([]domain.Rate, error) {
	return r.listRates(ctx, `SELECT `+rateColumns+` FROM rates WHERE is_active = TRUE ORDER BY currency_name;`)
}

// ListRates retrieves every rate, active or not.
func (r *PgxRateRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	return r.listRates(ctx, `SELECT `+rateColumns+` FROM rates ORDER BY currency_name;`)
}

// SaveRate inserts a new rate.
func (r *PgxRateRepository) SaveRate(ctx context.Context, rate domain.Rate) error {
	m := mapping.ToModelRate(rate)
	query := `
		INSERT INTO rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyCode,
		m.CurrencyName,
		m.BaseRate,
		m.BuyRate,
		m.SellRate,
		m.Markup,
		m.IsActive,
		m.LastUpdated,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save rate %s: %w", m.CurrencyCode, err)
	}
	return nil
}

// UpdateRate overwrites the mutable fields of an existing rate.
func (r *PgxRateRepository) UpdateRate(ctx context.Context, rate domain.Rate) error {
	m := mapping.ToModelRate(rate)
	query := `
		UPDATE rates
		SET currency_name = $2, base_rate = $3, buy_rate = $4, sell_rate = $5, markup = $6, is_active = $7,
			last_updated = $8, last_updated_at = $9, last_updated_by = $10
		WHERE currency_code = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CurrencyCode,
		m.CurrencyName,
		m.BaseRate,
		m.BuyRate,
		m.SellRate,
		m.Markup,
		m.IsActive,
		m.LastUpdated,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update rate %s: %w", m.CurrencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRate removes a rate.
func (r *PgxRateRepository) DeleteRate(ctx context.Context, currencyCode string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rates WHERE currency_code = $1;`, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to delete rate %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// BulkUpdateRates applies all updates in a single transaction. The first failing
// entry rolls back the whole batch.
func (r *PgxRateRepository) BulkUpdateRates(ctx context.Context, updates []domain.BulkRateUpdate, actorID string) ([]domain.Rate, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	now := time.Now().UTC()
	updated := make([]domain.Rate, 0, len(updates))
	for _, u := range updates {
		current, err := r.findRate(ctx, tx, u.CurrencyCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("rate for currency " + u.CurrencyCode)
			}
			return nil, err
		}

		next := *current
		next.BaseRate = u.BaseRate
		next.BuyRate = u.BuyRate
		next.SellRate = u.SellRate
		if err := next.ValidateBand(); err != nil {
			return nil, fmt.Errorf("%s: %w", u.CurrencyCode, err)
		}

		m, err := scanRate(tx.QueryRow(ctx, `
			UPDATE rates
			SET base_rate = $2, buy_rate = $3, sell_rate = $4, last_updated = $5, last_updated_at = $5, last_updated_by = $6
			WHERE currency_code = $1
			RETURNING `+rateColumns+`;`,
			u.CurrencyCode, u.BaseRate, u.BuyRate, u.SellRate, now, actorID,
		))
		if err != nil {
			return nil, fmt.Errorf("failed to update rate %s: %w", u.CurrencyCode, err)
		}
		updated = append(updated, mapping.ToDomainRate(m))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return updated, nil
}
