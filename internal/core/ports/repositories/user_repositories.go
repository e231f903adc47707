package repositories

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
)

// UserReader defines read operations for user data.
// Users and addresses are written by the account service; this side only reads them.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindAddressByID retrieves a delivery address by its ID.
	FindAddressByID(ctx context.Context, addressID string) (*domain.Address, error)
}

// PartnerReader defines read operations for fulfilment partners.
type PartnerReader interface {
	// FindPartnerByID retrieves a partner by its ID.
	FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	PartnerReader
}
