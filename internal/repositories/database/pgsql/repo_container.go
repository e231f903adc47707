package pgsql

import (
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:        newPgxRateRepository(dbPool),
		OrderRepo:       newPgxOrderRepository(dbPool),
		OfferRepo:       newPgxOfferRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		AuditRepo:       newPgxAuditRepository(dbPool),
		RateAlertRepo:   newPgxRateAlertRepository(dbPool),
	}
}
