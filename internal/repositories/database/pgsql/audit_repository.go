package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) *PgxAuditRepository {
	return &PgxAuditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AuditWriter = (*PgxAuditRepository)(nil)

// SaveAuditEntry appends an entry to audit_logs. Metadata is stored as JSONB.
func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	query := `
		INSERT INTO audit_logs (audit_id, actor, action, entity, entity_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.AuditID,
		entry.Actor,
		string(entry.Action),
		entry.Entity,
		entry.EntityID,
		metadata,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit entry %s for %s %s: %w", entry.Action, entry.Entity, entry.EntityID, err)
	}
	return nil
}
