package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Auditor portssvc.AuditSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RecordAudit hands an audit entry to the auditor, if one is configured.
func (s *BaseService) RecordAudit(ctx context.Context, actor string, action domain.AuditAction, entity, entityID string, metadata map[string]any) {
	if s.Auditor == nil {
		s.LogDebug(ctx, "No auditor configured, audit entry skipped",
			slog.String("action", string(action)),
			slog.String("entity_id", entityID))
		return
	}
	s.Auditor.Record(ctx, domain.AuditEntry{
		AuditID:   uuid.NewString(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	})
}
