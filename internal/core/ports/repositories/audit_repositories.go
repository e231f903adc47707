package repositories

import (
	"context"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
)

// AuditWriter appends entries to the audit log.
type AuditWriter interface {
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error
}
