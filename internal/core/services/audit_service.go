package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
)

type auditService struct {
	BaseService
	repo portsrepo.AuditWriter
	jobs portssvc.JobSubmitter
}

// NewAuditService creates an audit recorder that writes entries in the background.
func NewAuditService(repo portsrepo.AuditWriter, jobs portssvc.JobSubmitter) portssvc.AuditSvc {
	return &auditService{repo: repo, jobs: jobs}
}

var _ portssvc.AuditSvc = (*auditService)(nil)

// Record queues entry for persistence. A full queue drops it; the caller is never affected.
func (s *auditService) Record(ctx context.Context, entry domain.AuditEntry) {
	accepted := s.jobs.Submit("audit:"+string(entry.Action), func(jobCtx context.Context) error {
		return s.repo.SaveAuditEntry(jobCtx, entry)
	})
	if !accepted {
		s.LogInfo(ctx, "Audit entry dropped",
			slog.String("action", string(entry.Action)),
			slog.String("entity", entry.Entity),
			slog.String("entity_id", entry.EntityID))
	}
}
