package services

import (
	"context"

	"github.com/lanca/lanca-api/internal/cache"
	"github.com/lanca/lanca-api/internal/config"
	"github.com/lanca/lanca-api/internal/jobs"
	"github.com/lanca/lanca-api/internal/metrics"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Supplier     *ReferenceService[models.Supplier]
	Bank         *ReferenceService[models.Bank]
	DocumentType *ReferenceService[models.DocumentType]
	CostCenter   *ReferenceService[models.CostCenter]
	Installment  *ReferenceService[models.Installment]
	Status       *ReferenceService[models.StatusOption]
	Payable      *PayableService
	Import       *ImportService
	Export       *ExportService
	Report       *ReportService
	User         *UserService
	Audit        *AuditService
	Job          *JobService
}

// NewServices creates all service instances
func NewServices(
	repos *repository.Repositories,
	worker *jobs.Worker,
	store *storage.LocalStorage,
	listCache *cache.ListCache,
	m *metrics.Metrics,
	cfg *config.Config,
) *Services {
	auditSvc := NewAuditService(repos.Audit, worker)
	payableSvc := NewPayableService(repos.Payable, listCache, auditSvc, m, cfg.ListLimit)

	// labels are embedded in the cached ledger list
	invalidate := func(ctx context.Context) { payableSvc.Invalidate(ctx) }

	svcs := &Services{
		Supplier:     NewReferenceService(repos.Supplier, auditSvc, "Supplier", "nome_razao", invalidate),
		Bank:         NewReferenceService(repos.Bank, auditSvc, "Bank", "nome_banco", invalidate),
		DocumentType: NewReferenceService(repos.DocumentType, auditSvc, "DocumentType", "descricao", invalidate),
		CostCenter:   NewReferenceService(repos.CostCenter, auditSvc, "CostCenter", "descricao", invalidate),
		Installment:  NewReferenceService(repos.Installment, auditSvc, "Installment", "descricao", invalidate),
		Status:       NewReferenceService(repos.Status, auditSvc, "Status", "descricao", nil),
		Payable:      payableSvc,
		Import:       NewImportService(repos, payableSvc, auditSvc, store, m, cfg.ImportConcurrency),
		Export:       NewExportService(payableSvc, auditSvc),
		Report:       NewReportService(payableSvc, cfg.WeekStart, cfg.WkhtmltopdfPath),
		User:         NewUserService(repos.User),
		Audit:        auditSvc,
	}
	if worker != nil {
		svcs.Job = NewJobService(worker, payableSvc, store, cfg.ImportRetentionDays)
	}
	return svcs
}
