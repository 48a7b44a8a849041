package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"
	"unicode/utf8"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/jung-kurt/gofpdf"
	"github.com/lanca/lanca-api/internal/datecalc"
	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/shopspring/decimal"
)

//go:embed templates/reports/*.html
var reportTemplates embed.FS

// Dashboard is the landing page summary
type Dashboard struct {
	Totals         ledger.Totals   `json:"totals"`
	OverdueCount   int             `json:"overdue_count"`
	Overdue        decimal.Decimal `json:"overdue"`
	ByDocumentType []ledger.Group  `json:"by_document_type"`
	ByStatus       []ledger.Group  `json:"by_status"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

type ReportService struct {
	payableSvc *PayableService
	weekStart  time.Weekday
	now        func() time.Time
}

func NewReportService(payableSvc *PayableService, weekStart time.Weekday, wkhtmltopdfPath string) *ReportService {
	if wkhtmltopdfPath != "" {
		wkhtmltopdf.SetPath(wkhtmltopdfPath)
	}
	return &ReportService{payableSvc: payableSvc, weekStart: weekStart, now: time.Now}
}

// WeekStart is the configured first day of the week
func (s *ReportService) WeekStart() time.Weekday {
	return s.weekStart
}

func (s *ReportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	records, err := s.payableSvc.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := ledger.Day(s.now())
	d := &Dashboard{
		Totals:         ledger.Summarize(records),
		Overdue:        decimal.Zero,
		ByDocumentType: ledger.GroupBy(records, ledger.ByDocumentType),
		ByStatus:       ledger.GroupBy(records, ledger.ByStatus),
		GeneratedAt:    s.now(),
	}
	for _, r := range records {
		if r.DueDate != nil && ledger.Day(*r.DueDate).Before(today) && models.NormalizeStatus(r.Status) == models.StatusPending {
			d.OverdueCount++
			d.Overdue = d.Overdue.Add(r.Amount)
		}
	}
	return d, nil
}

func (s *ReportService) Daily(ctx context.Context, day time.Time) (*ledger.DailyReport, error) {
	records, err := s.payableSvc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	report := ledger.Daily(records, day)
	return &report, nil
}

func (s *ReportService) Weekly(ctx context.Context, year int, weekStart time.Weekday) (*ledger.WeeklyReport, error) {
	records, err := s.payableSvc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	report := ledger.Weekly(records, year, weekStart)
	return &report, nil
}

func (s *ReportService) Suppliers(ctx context.Context, search string) (*ledger.SupplierReport, error) {
	records, err := s.payableSvc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	report := ledger.BySupplier(records, search)
	return &report, nil
}

// Group aggregates the filtered ledger by key
func (s *ReportService) Group(ctx context.Context, key ledger.Key, criteria ledger.Criteria) ([]ledger.Group, error) {
	records, err := s.payableSvc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.GroupBy(ledger.Filter(records, criteria), key), nil
}

// DailyPDF renders the daily report as a printable A4 page
func (s *ReportService) DailyPDF(ctx context.Context, day time.Time) ([]byte, string, error) {
	report, err := s.Daily(ctx, day)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Relatório Diário", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Relatório Diário"))
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, tr(datecalc.LongDate(report.Date)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(45, 8, "Documentos:")
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(30, 8, fmt.Sprintf("%d", report.Count))
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(25, 8, "Total:")
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 8, models.FormatBRL(report.Total))
	pdf.Ln(12)

	widths := []float64{55, 35, 30, 35, 35}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Fornecedor", "Tipo", "Documento", "Banco", "Valor"} {
		align := "L"
		if i == len(widths)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(report.Records) == 0 {
		pdf.CellFormat(190, 7, tr("Nenhuma conta vence neste dia."), "1", 1, "C", false, 0, "")
	}
	for _, r := range report.Records {
		cells := []string{
			fit(models.OrPlaceholder(r.SupplierName), 30),
			fit(models.OrPlaceholder(r.DocumentType), 18),
			fit(models.OrPlaceholder(r.DocumentNumber), 15),
			fit(models.OrPlaceholder(r.Bank), 18),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.CellFormat(widths[4], 6, models.FormatBRL(r.Amount), "1", 1, "R", false, 0, "")
	}

	for _, section := range []struct {
		title  string
		groups []ledger.Group
	}{
		{"Por Tipo de Documento", report.ByDocumentType},
		{"Por Razão", report.ByCostCenter},
		{"Por Banco", report.ByBank},
	} {
		if len(section.groups) == 0 {
			continue
		}
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, tr(section.title))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 9)
		for _, g := range section.groups {
			pdf.CellFormat(110, 6, tr(fit(g.Label, 60)), "B", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%d", g.Count), "B", 0, "R", false, 0, "")
			pdf.CellFormat(50, 6, models.FormatBRL(g.Total), "B", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render daily report: %w", err)
	}
	filename := fmt.Sprintf("Relatorio_Diario_%s.pdf", report.Date.Format("20060102"))
	return buf.Bytes(), filename, nil
}

// weeklyView is the data of the weekly report template
type weeklyView struct {
	Report      *ledger.WeeklyReport
	WeekStart   string
	GeneratedAt time.Time
}

// WeeklyHTML renders the weekly report document
func (s *ReportService) WeeklyHTML(ctx context.Context, year int, weekStart time.Weekday) ([]byte, error) {
	report, err := s.Weekly(ctx, year, weekStart)
	if err != nil {
		return nil, err
	}
	return s.renderTemplate("weekly_report.html", weeklyView{
		Report:      report,
		WeekStart:   weekdayLabel(weekStart),
		GeneratedAt: s.now(),
	})
}

// WeeklyPDF converts the weekly report document with wkhtmltopdf
func (s *ReportService) WeeklyPDF(ctx context.Context, year int, weekStart time.Weekday) ([]byte, string, error) {
	html, err := s.WeeklyHTML(ctx, year, weekStart)
	if err != nil {
		return nil, "", err
	}
	buf, err := s.generatePDF(html)
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("Relatorio_Semanal_%d.pdf", year), nil
}

func (s *ReportService) renderTemplate(name string, data any) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(reportFuncs).ParseFS(reportTemplates, "templates/reports/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// generatePDF converts an HTML document to PDF
func (s *ReportService) generatePDF(html []byte) (*bytes.Buffer, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}
	return pdfg.Buffer(), nil
}

var reportFuncs = template.FuncMap{
	"brl":  models.FormatBRL,
	"dash": models.OrPlaceholder,
	"date": func(t time.Time) string { return t.Format("02/01/2006") },
	"dateptr": func(t *time.Time) string {
		if t == nil {
			return models.Placeholder
		}
		return t.Format("02/01/2006")
	},
	"deref":   func(t *time.Time) time.Time { return *t },
	"weekday": datecalc.WeekdayShort,
}

// weekdayLabel names w in Portuguese; 1 Jan 2023 was a Sunday
func weekdayLabel(w time.Weekday) string {
	return datecalc.WeekdayName(time.Date(2023, time.January, 1+int(w), 0, 0, 0, 0, time.UTC))
}

// fit truncates s to n runes for fixed-width PDF cells
func fit(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
