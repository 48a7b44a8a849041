package services

import (
	"context"
	"fmt"

	"github.com/lanca/lanca-api/internal/jobs"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/pkg/logger"
)

// Actor identifies who triggered a change
type Actor struct {
	Email     string
	IP        string
	UserAgent string
}

// SystemActor is used by the CLI and scheduled jobs
var SystemActor = Actor{Email: "system"}

type AuditService struct {
	repo   repository.AuditRepository
	worker *jobs.Worker
}

// NewAuditService creates the audit trail writer. With a worker, entries
// are written in the background; without one, inline.
func NewAuditService(repo repository.AuditRepository, worker *jobs.Worker) *AuditService {
	return &AuditService{repo: repo, worker: worker}
}

// Log records an audit entry. Failures are logged, never returned: the
// audited write already happened.
func (s *AuditService) Log(ctx context.Context, actor Actor, action, entity string, entityID uint, details string) {
	entry := &models.AuditLog{
		Actor:     actor.Email,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		IPAddress: actor.IP,
		UserAgent: actor.UserAgent,
	}
	write := func(ctx context.Context) error {
		if err := s.repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("audit %s %s#%d: %w", action, entity, entityID, err)
		}
		return nil
	}

	if s.worker == nil {
		if err := write(ctx); err != nil {
			logger.Error("failed to write audit log", "error", err)
		}
		return
	}
	s.worker.EnqueueAsync(write)
}

// List retrieves audit logs, newest first, optionally for one entity
func (s *AuditService) List(ctx context.Context, entity string, limit, offset int) ([]models.AuditLog, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, entity, limit, offset)
}
