package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lanca/lanca-api/internal/jobs"
	"github.com/lanca/lanca-api/internal/storage"
	"github.com/lanca/lanca-api/pkg/logger"
)

// Scheduled job names
const (
	JobPurgeImports = "purge_imports"
	JobWarmCache    = "warm_ledger_cache"
)

type JobService struct {
	worker        *jobs.Worker
	payableSvc    *PayableService
	storage       *storage.LocalStorage
	retentionDays int
	now           func() time.Time
}

func NewJobService(worker *jobs.Worker, payableSvc *PayableService, store *storage.LocalStorage, retentionDays int) *JobService {
	return &JobService{
		worker:        worker,
		payableSvc:    payableSvc,
		storage:       store,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// Schedule registers the recurring jobs on the worker
func (s *JobService) Schedule() {
	s.worker.ScheduleEveryImmediate(JobPurgeImports, 24*time.Hour, s.PurgeImports)
	s.worker.ScheduleEvery(JobWarmCache, 15*time.Minute, s.payableSvc.Warm)
	logger.Info("Scheduled recurring jobs")
}

// PurgeImports deletes archived import files past the retention period
func (s *JobService) PurgeImports(ctx context.Context) error {
	if s.storage == nil || s.retentionDays <= 0 {
		return nil
	}
	cutoff := s.now().AddDate(0, 0, -s.retentionDays)
	removed, err := s.storage.PurgeOlderThan(storage.ImportsDir, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge import archive: %w", err)
	}
	if removed > 0 {
		logger.Info("[Job] purged archived imports", "removed", removed, "older_than", cutoff.Format(time.DateOnly))
	}
	return nil
}

func (s *JobService) GetStatus() jobs.WorkerStats {
	return s.worker.GetStats()
}
