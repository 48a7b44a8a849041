package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lanca/lanca-api/internal/jobs"
	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/metrics"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/internal/spreadsheet"
	"github.com/lanca/lanca-api/internal/storage"
	"github.com/lanca/lanca-api/pkg/logger"
)

// ImportSummary is the per-row outcome of a spreadsheet import
type ImportSummary struct {
	BatchID  string       `json:"batch_id"`
	Filename string       `json:"filename"`
	Archive  string       `json:"archive,omitempty"`
	Total    int          `json:"total"`
	Created  int          `json:"created"`
	Skipped  int          `json:"skipped"`
	Failed   int          `json:"failed"`
	Rows     []RowOutcome `json:"rows"`
}

// RowOutcome reports what happened to one spreadsheet line
type RowOutcome struct {
	Line      int      `json:"line"`
	Outcome   string   `json:"outcome"`
	PayableID uint     `json:"payable_id,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// labelIndex resolves imported labels to reference ids
type labelIndex struct {
	suppliers     map[string]uint
	documentTypes map[string]uint
	costCenters   map[string]uint
	installments  map[string]uint
	banks         map[string]uint
}

// ImportService creates ledger records from spreadsheet rows. Rows are
// independent: each is inserted on its own and reported on its own.
type ImportService struct {
	repos       *repository.Repositories
	payableSvc  *PayableService
	auditSvc    *AuditService
	storage     *storage.LocalStorage
	metrics     *metrics.Metrics
	mapper      *spreadsheet.Mapper
	concurrency int
	now         func() time.Time
}

func NewImportService(
	repos *repository.Repositories,
	payableSvc *PayableService,
	auditSvc *AuditService,
	store *storage.LocalStorage,
	m *metrics.Metrics,
	concurrency int,
) *ImportService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ImportService{
		repos:       repos,
		payableSvc:  payableSvc,
		auditSvc:    auditSvc,
		storage:     store,
		metrics:     m,
		mapper:      spreadsheet.NewMapper(spreadsheet.DefaultSchema()),
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Import reads an .xlsx, .xls or .csv file and inserts one payable per
// usable row
func (s *ImportService) Import(ctx context.Context, r io.Reader, filename string, actor Actor) (*ImportSummary, error) {
	if !spreadsheet.IsSupported(filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}
	data, err := io.ReadAll(io.LimitReader(r, storage.MaxFileSize()+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > storage.MaxFileSize() {
		return nil, &ValidationError{Field: "file", Message: storage.ErrFileTooLarge.Error()}
	}

	sheet, err := spreadsheet.ReadRows(bytes.NewReader(data), filename)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, &ValidationError{Field: "file", Message: fmt.Sprintf("Não foi possível ler a planilha: %v", err)}
	}

	summary := &ImportSummary{
		BatchID:  uuid.NewString(),
		Filename: filename,
		Total:    len(sheet.Rows),
		Rows:     make([]RowOutcome, len(sheet.Rows)),
	}

	if s.storage != nil {
		if path, err := s.storage.Save(bytes.NewReader(data), filename, storage.ImportsDir); err != nil {
			logger.Warn("failed to archive import file", "batch_id", summary.BatchID, "error", err)
		} else {
			summary.Archive = path
		}
	}

	index, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}

	jobs.ForEach(ctx, len(sheet.Rows), s.concurrency, func(ctx context.Context, i int) {
		summary.Rows[i] = s.importRow(ctx, sheet.Lines[i], sheet.Rows[i], index)
	})

	for i := range summary.Rows {
		if summary.Rows[i].Outcome == "" {
			summary.Rows[i] = RowOutcome{Line: sheet.Lines[i], Outcome: metrics.OutcomeFailed, Error: "importação interrompida"}
		}
	}
	for _, row := range summary.Rows {
		switch row.Outcome {
		case metrics.OutcomeCreated:
			summary.Created++
		case metrics.OutcomeSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
		s.metrics.ImportRow(row.Outcome)
	}

	if summary.Created > 0 {
		s.payableSvc.Invalidate(ctx)
	}
	s.auditSvc.Log(ctx, actor, models.AuditImport, payableEntity, 0,
		fmt.Sprintf("Importação %s (%s): %d criadas, %d ignoradas, %d com erro", summary.BatchID, filename, summary.Created, summary.Skipped, summary.Failed))
	logger.Info("spreadsheet imported",
		"batch_id", summary.BatchID,
		"filename", filename,
		"total", summary.Total,
		"created", summary.Created,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary, nil
}

func (s *ImportService) importRow(ctx context.Context, line int, row spreadsheet.Row, index *labelIndex) RowOutcome {
	out := RowOutcome{Line: line}
	if ctx.Err() != nil {
		out.Outcome = metrics.OutcomeFailed
		out.Error = ctx.Err().Error()
		return out
	}

	imported, err := s.mapper.Map(line, row)
	if err != nil {
		out.Error = err.Error()
		if errors.Is(err, spreadsheet.ErrEmptyRow) {
			out.Outcome = metrics.OutcomeSkipped
		} else {
			out.Outcome = metrics.OutcomeFailed
		}
		return out
	}
	out.Warnings = imported.Warnings

	p := s.toPayable(imported, index)
	if err := s.repos.Payable.Create(ctx, p); err != nil {
		out.Outcome = metrics.OutcomeFailed
		out.Error = err.Error()
		return out
	}
	out.Outcome = metrics.OutcomeCreated
	out.PayableID = p.ID
	return out
}

// toPayable resolves labels to ids. An unknown supplier is kept in the
// notes as "Importado: <name>".
func (s *ImportService) toPayable(in *spreadsheet.ImportedPayable, index *labelIndex) *models.Payable {
	p := &models.Payable{
		DueDate:        in.DueDate,
		AccrualDate:    in.AccrualDate,
		Amount:         in.Amount,
		SupplierID:     lookup(index.suppliers, in.SupplierName),
		DocumentTypeID: lookup(index.documentTypes, in.DocumentType),
		CostCenterID:   lookup(index.costCenters, in.CostCenter),
		InstallmentID:  lookup(index.installments, in.Installment),
		BankID:         lookup(index.banks, in.Bank),
		DocumentNumber: strings.TrimSpace(in.DocumentNumber),
		InvoiceNumber:  strings.TrimSpace(in.InvoiceNumber),
		Status:         in.Status,
		Notes:          strings.TrimSpace(in.Notes),
		Tags:           in.Tags,
	}
	if p.Status == "" {
		p.Status = models.StatusPending
	}
	if p.AccrualDate == nil {
		today := ledger.Day(s.now())
		p.AccrualDate = &today
	}
	if p.SupplierID == nil && strings.TrimSpace(in.SupplierName) != "" {
		note := "Importado: " + strings.TrimSpace(in.SupplierName)
		if p.Notes != "" {
			note += " | " + p.Notes
		}
		p.Notes = note
	}
	return p
}

func (s *ImportService) loadIndex(ctx context.Context) (*labelIndex, error) {
	all := repository.NewListQuery()
	suppliers, err := s.repos.Supplier.List(ctx, all)
	if err != nil {
		return nil, err
	}
	documentTypes, err := s.repos.DocumentType.List(ctx, all)
	if err != nil {
		return nil, err
	}
	costCenters, err := s.repos.CostCenter.List(ctx, all)
	if err != nil {
		return nil, err
	}
	installments, err := s.repos.Installment.List(ctx, all)
	if err != nil {
		return nil, err
	}
	banks, err := s.repos.Bank.List(ctx, all)
	if err != nil {
		return nil, err
	}

	index := &labelIndex{
		suppliers:     indexLabels(suppliers),
		documentTypes: indexLabels(documentTypes),
		costCenters:   indexLabels(costCenters),
		installments:  indexLabels(installments),
		banks:         indexLabels(banks),
	}
	// trade names resolve too, without shadowing a company name
	for _, sup := range suppliers {
		key := ledger.Fold(sup.TradeName)
		if _, taken := index.suppliers[key]; key != "" && !taken {
			index.suppliers[key] = sup.ID
		}
	}
	return index, nil
}

// indexLabels maps folded labels to ids; the lowest id wins on duplicates
func indexLabels[T models.Reference](items []T) map[string]uint {
	index := make(map[string]uint, len(items))
	for _, item := range items {
		key := ledger.Fold(item.Label())
		if key == "" {
			continue
		}
		if id, ok := index[key]; !ok || item.GetID() < id {
			index[key] = item.GetID()
		}
	}
	return index
}

func lookup(index map[string]uint, label string) *uint {
	id, ok := index[ledger.Fold(label)]
	if !ok || label == "" {
		return nil
	}
	return &id
}
