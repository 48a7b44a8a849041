package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lanca/lanca-api/internal/cache"
	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/metrics"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/internal/statemachine"
	"github.com/lanca/lanca-api/pkg/logger"
)

const payableEntity = "Payable"

// PayableList is a filtered ledger with its totals
type PayableList struct {
	Payables []models.PayableView `json:"payables"`
	Summary  ledger.Totals        `json:"summary"`
}

// PayableService handles the ledger: store call, audit entry and cache
// invalidation for every write
type PayableService struct {
	repo      repository.PayableRepository
	cache     *cache.ListCache
	auditSvc  *AuditService
	metrics   *metrics.Metrics
	listLimit int
	now       func() time.Time
}

func NewPayableService(
	repo repository.PayableRepository,
	listCache *cache.ListCache,
	auditSvc *AuditService,
	m *metrics.Metrics,
	listLimit int,
) *PayableService {
	return &PayableService{
		repo:      repo,
		cache:     listCache,
		auditSvc:  auditSvc,
		metrics:   m,
		listLimit: listLimit,
		now:       time.Now,
	}
}

// ListAll returns the joined ledger in default order, capped at the list
// limit, from the cache when possible
func (s *PayableService) ListAll(ctx context.Context) ([]models.PayableView, error) {
	if s.cache != nil {
		if list, ok := s.cache.Load(ctx); ok {
			s.metrics.CacheLookup(true)
			return list, nil
		}
		s.metrics.CacheLookup(false)
	}
	return s.fill(ctx)
}

func (s *PayableService) fill(ctx context.Context) ([]models.PayableView, error) {
	var token uint64
	if s.cache != nil {
		token = s.cache.Begin(ctx)
	}
	list, err := s.repo.List(ctx, &repository.ListQuery{Limit: s.listLimit})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Store(ctx, token, list)
	}
	return list, nil
}

// List honours an explicit order or a smaller limit; the default query is
// served by ListAll
func (s *PayableService) List(ctx context.Context, query *repository.ListQuery) ([]models.PayableView, error) {
	if query == nil || (query.OrderBy == "" && (query.Limit <= 0 || query.Limit == s.listLimit)) {
		return s.ListAll(ctx)
	}
	q := *query
	if q.Limit <= 0 || (s.listLimit > 0 && q.Limit > s.listLimit) {
		q.Limit = s.listLimit
	}
	return s.repo.List(ctx, &q)
}

// Search lists the ledger and applies the filter criteria
func (s *PayableService) Search(ctx context.Context, query *repository.ListQuery, criteria ledger.Criteria) (*PayableList, error) {
	records, err := s.List(ctx, query)
	if err != nil {
		return nil, err
	}
	filtered := ledger.Filter(records, criteria)
	return &PayableList{Payables: filtered, Summary: ledger.Summarize(filtered)}, nil
}

func (s *PayableService) FindByID(ctx context.Context, id uint) (*models.PayableView, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	view := p.ToView()
	return &view, nil
}

func (s *PayableService) Create(ctx context.Context, in models.PayableInput, actor Actor) (*models.PayableView, error) {
	p, err := ledger.ValidateInput(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.Invalidate(ctx)
	s.auditSvc.Log(ctx, actor, models.AuditCreate, payableEntity, p.ID,
		fmt.Sprintf("Conta criada: %s vence %s", models.FormatBRL(p.Amount), p.DueDate.Format("02/01/2006")))
	return s.FindByID(ctx, p.ID)
}

// Update replaces the editable fields of a payable. A blank status keeps
// the current one; a different status must be a valid transition.
func (s *PayableService) Update(ctx context.Context, id uint, in models.PayableInput, actor Actor) (*models.PayableView, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	keepStatus := strings.TrimSpace(in.Status) == ""
	p, err := ledger.ValidateInput(in, s.now())
	if err != nil {
		return nil, err
	}
	if keepStatus || models.NormalizeStatus(existing.Status) == p.Status {
		p.Status = existing.Status
	} else if err := statemachine.NewPayableFSM(existing).SetStatus(ctx, p.Status); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.AccrualDate) == "" {
		p.AccrualDate = existing.AccrualDate
	}
	p.ID = id
	p.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, notFound(err)
	}
	s.Invalidate(ctx)
	s.auditSvc.Log(ctx, actor, models.AuditUpdate, payableEntity, id,
		fmt.Sprintf("Conta atualizada: %s vence %s", models.FormatBRL(p.Amount), p.DueDate.Format("02/01/2006")))
	return s.FindByID(ctx, id)
}

// SetStatus moves a payable to status through the state machine
func (s *PayableService) SetStatus(ctx context.Context, id uint, status string, actor Actor) (*models.PayableView, error) {
	if strings.TrimSpace(status) == "" {
		return nil, &ValidationError{Field: "status", Message: "Informe o status"}
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	from := existing.Status
	if err := statemachine.NewPayableFSM(existing).SetStatus(ctx, status); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, existing.Status); err != nil {
		return nil, notFound(err)
	}
	s.Invalidate(ctx)
	s.auditSvc.Log(ctx, actor, models.AuditStatus, payableEntity, id, fmt.Sprintf("Status: %s → %s", from, existing.Status))

	view := existing.ToView()
	return &view, nil
}

func (s *PayableService) Delete(ctx context.Context, id uint, actor Actor) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	s.Invalidate(ctx)
	s.auditSvc.Log(ctx, actor, models.AuditDelete, payableEntity, id, "Conta excluída")
	return nil
}

// Invalidate drops the cached ledger list
func (s *PayableService) Invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// Warm refills the ledger cache; run by the scheduler
func (s *PayableService) Warm(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	list, err := s.fill(ctx)
	if err != nil {
		return fmt.Errorf("failed to warm ledger cache: %w", err)
	}
	logger.Debug("ledger cache warmed", "records", len(list))
	return nil
}
