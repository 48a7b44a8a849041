package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lanca/lanca-api/internal/config"
	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
	now           func() time.Time
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService, now: time.Now}
}

// @Summary Dashboard
// @Description Totals, overdue pending amount and groupings of the whole ledger
// @Tags Reports
// @Produce json
// @Success 200 {object} services.Dashboard
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary Daily report
// @Description Records due on a date, grouped by document type, cost center and bank
// @Tags Reports
// @Produce json
// @Param date query string false "Day (defaults to today)"
// @Success 200 {object} ledger.DailyReport
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *ReportHandler) Daily(c *gin.Context) {
	day, ok := h.parseDay(c)
	if !ok {
		return
	}
	report, err := h.reportService.Daily(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Daily report PDF
// @Tags Reports
// @Produce application/pdf
// @Param date query string false "Day (defaults to today)"
// @Success 200 {file} file "Relatorio_Diario_yyyymmdd.pdf"
// @Security BearerAuth
// @Router /reports/daily/pdf [get]
func (h *ReportHandler) DailyPDF(c *gin.Context) {
	day, ok := h.parseDay(c)
	if !ok {
		return
	}
	data, filename, err := h.reportService.DailyPDF(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Weekly report
// @Description Records of a year grouped by week
// @Tags Reports
// @Produce json
// @Param year query int false "Year (defaults to the current one)"
// @Param week_start query string false "sunday | monday (defaults to WEEK_START)"
// @Success 200 {object} ledger.WeeklyReport
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /reports/weekly [get]
func (h *ReportHandler) Weekly(c *gin.Context) {
	year, weekStart, ok := h.parseWeekly(c)
	if !ok {
		return
	}
	report, err := h.reportService.Weekly(c.Request.Context(), year, weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Weekly report PDF
// @Description Rendered with wkhtmltopdf; format=html returns the document instead
// @Tags Reports
// @Produce application/pdf
// @Param year query int false "Year"
// @Param week_start query string false "sunday | monday"
// @Param format query string false "pdf | html" default(pdf)
// @Success 200 {file} file "Relatorio_Semanal_yyyy.pdf"
// @Security BearerAuth
// @Router /reports/weekly/pdf [get]
func (h *ReportHandler) WeeklyPDF(c *gin.Context) {
	year, weekStart, ok := h.parseWeekly(c)
	if !ok {
		return
	}
	if c.Query("format") == "html" {
		html, err := h.reportService.WeeklyHTML(c.Request.Context(), year, weekStart)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", html)
		return
	}
	data, filename, err := h.reportService.WeeklyPDF(c.Request.Context(), year, weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Supplier ranking
// @Tags Reports
// @Produce json
// @Param search query string false "Supplier name contains"
// @Success 200 {object} ledger.SupplierReport
// @Security BearerAuth
// @Router /reports/suppliers [get]
func (h *ReportHandler) Suppliers(c *gin.Context) {
	report, err := h.reportService.Suppliers(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Group ledger
// @Description Count and total per bucket of the filtered ledger; accepts the list filters
// @Tags Reports
// @Produce json
// @Param by query string true "document_type | cost_center | bank | supplier | status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /reports/group [get]
func (h *ReportHandler) Group(c *gin.Context) {
	key, err := ledger.ParseKey(c.Query("by"))
	if err != nil {
		respondError(c, err)
		return
	}
	criteria, ok := parseCriteria(c)
	if !ok {
		return
	}
	groups, err := h.reportService.Group(c.Request.Context(), key, criteria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"by": key, "groups": groups})
}

func (h *ReportHandler) parseDay(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return ledger.Day(h.now()), true
	}
	day, err := ledger.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida", "field": "date"})
		return time.Time{}, false
	}
	return day, true
}

func (h *ReportHandler) parseWeekly(c *gin.Context) (int, time.Weekday, bool) {
	year := h.now().Year()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1900 || y > 9999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ano inválido", "field": "year"})
			return 0, 0, false
		}
		year = y
	}
	weekStart := h.reportService.WeekStart()
	if raw := c.Query("week_start"); raw != "" {
		ws, err := config.ParseWeekStart(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Início de semana inválido", "field": "week_start"})
			return 0, 0, false
		}
		weekStart = ws
	}
	return year, weekStart, true
}
