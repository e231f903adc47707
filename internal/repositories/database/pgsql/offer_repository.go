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

const offerColumns = `offer_id, code, title, description, discount_type, discount_value, min_amount, max_discount,
	valid_from, valid_until, usage_limit, usage_count, is_active, created_at, created_by, last_updated_at, last_updated_by`

// incrementOfferUsageSQL checks the limit and consumes a use in one statement.
const incrementOfferUsageSQL = `
	UPDATE offers SET usage_count = usage_count + 1, last_updated_at = NOW()
	WHERE code = $1 AND (usage_limit IS NULL OR usage_count < usage_limit)
	RETURNING ` + offerColumns + `;`

type PgxOfferRepository struct {
	BaseRepository
}

func newPgxOfferRepository(pool *pgxpool.Pool) *PgxOfferRepository {
	return &PgxOfferRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OfferRepositoryFacade = (*PgxOfferRepository)(nil)

func scanOffer(row pgx.Row) (models.Offer, error) {
	var m models.Offer
	err := row.Scan(
		&m.OfferID,
		&m.Code,
		&m.Title,
		&m.Description,
		&m.DiscountType,
		&m.DiscountValue,
		&m.MinAmount,
		&m.MaxDiscount,
		&m.ValidFrom,
		&m.ValidUntil,
		&m.UsageLimit,
		&m.UsageCount,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindOfferByCode retrieves an offer by code, regardless of its validity window.
func (r *PgxOfferRepository) FindOfferByCode(ctx context.Context, code string) (*domain.Offer, error) {
	m, err := scanOffer(r.Pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE code = $1;`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find offer %s: %w", code, err)
	}
	offer := mapping.ToDomainOffer(m)
	return &offer, nil
}

// ListActiveOffers retrieves active offers valid at the given instant, ending soonest first.
func (r *PgxOfferRepository) ListActiveOffers(ctx context.Context, at time.Time) ([]domain.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE is_active = TRUE AND valid_from <= $1 AND valid_until >= $1
			AND (usage_limit IS NULL OR usage_count < usage_limit)
		ORDER BY valid_until, code;
	`
	rows, err := r.Pool.Query(ctx, query, at)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	modelOffers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Offer, error) {
		return scanOffer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan offers: %w", err)
	}
	return mapping.ToDomainOfferSlice(modelOffers), nil
}

// IncrementOfferUsage consumes one use of the offer. The limit check and the increment
// happen in one statement so concurrent redemptions can never exceed usage_limit.
func (r *PgxOfferRepository) IncrementOfferUsage(ctx context.Context, code string) (*domain.Offer, error) {
	m, err := scanOffer(r.Pool.QueryRow(ctx, incrementOfferUsageSQL, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, findErr := r.FindOfferByCode(ctx, code); findErr != nil {
				return nil, findErr
			}
			return nil, apperrors.NewInvalidStateError("offer usage limit reached")
		}
		return nil, fmt.Errorf("failed to redeem offer %s: %w", code, err)
	}
	offer := mapping.ToDomainOffer(m)
	return &offer, nil
}
