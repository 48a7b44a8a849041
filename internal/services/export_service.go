package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/internal/spreadsheet"
)

// ExportService writes the filtered ledger to a workbook
type ExportService struct {
	payableSvc *PayableService
	auditSvc   *AuditService
	now        func() time.Time
}

func NewExportService(payableSvc *PayableService, auditSvc *AuditService) *ExportService {
	return &ExportService{payableSvc: payableSvc, auditSvc: auditSvc, now: time.Now}
}

// ExportXLSX returns the workbook bytes and its download name. An empty
// selection is ErrNothingToExport.
func (s *ExportService) ExportXLSX(ctx context.Context, query *repository.ListQuery, criteria ledger.Criteria, actor Actor) ([]byte, string, error) {
	list, err := s.payableSvc.Search(ctx, query, criteria)
	if err != nil {
		return nil, "", err
	}
	data, err := spreadsheet.WriteWorkbook(list.Payables)
	if err != nil {
		return nil, "", err
	}

	filename := spreadsheet.ExportFilename(s.now())
	s.auditSvc.Log(ctx, actor, models.AuditExport, payableEntity, 0,
		fmt.Sprintf("Exportação %s: %d contas, total %s", filename, list.Summary.Count, models.FormatBRL(list.Summary.Total)))
	return data, filename, nil
}
