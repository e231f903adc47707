package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/forex_marketplace/internal/models"
	"github.com/SscSPs/forex_marketplace/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a read-only repository over users, addresses and partners.
func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// FindUserByID retrieves a non-deleted user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, phone, role, kyc_status, created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Role,
		&m.KYCStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by id %s: %w", userID, err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

// FindAddressByID retrieves a delivery address by ID.
func (r *PgxUserRepository) FindAddressByID(ctx context.Context, addressID string) (*domain.Address, error) {
	query := `
		SELECT address_id, user_id, line1, line2, city, state, pincode
		FROM addresses
		WHERE address_id = $1;
	`
	var m models.Address
	err := r.Pool.QueryRow(ctx, query, addressID).Scan(
		&m.AddressID,
		&m.UserID,
		&m.Line1,
		&m.Line2,
		&m.City,
		&m.State,
		&m.Pincode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find address %s: %w", addressID, err)
	}
	address := mapping.ToDomainAddress(m)
	return &address, nil
}

// FindPartnerByID retrieves a fulfilment partner by ID.
func (r *PgxUserRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	var m models.Partner
	err := r.Pool.QueryRow(ctx, `SELECT partner_id, name, city, is_active FROM partners WHERE partner_id = $1;`, partnerID).Scan(
		&m.PartnerID,
		&m.Name,
		&m.City,
		&m.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner %s: %w", partnerID, err)
	}
	partner := mapping.ToDomainPartner(m)
	return &partner, nil
}
