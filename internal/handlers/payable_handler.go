package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/services"
	"github.com/lanca/lanca-api/internal/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayableHandler struct {
	payableService *services.PayableService
	importService  *services.ImportService
	exportService  *services.ExportService
}

func NewPayableHandler(payableService *services.PayableService, importService *services.ImportService, exportService *services.ExportService) *PayableHandler {
	return &PayableHandler{
		payableService: payableService,
		importService:  importService,
		exportService:  exportService,
	}
}

// @Summary List payables
// @Description Joined ledger, filtered, with count and totals of the filtered set
// @Tags Payables
// @Produce json
// @Param order_by query string false "Column, prefixed with - for descending"
// @Param limit query int false "Maximum number of rows"
// @Param from query string false "Start date (yyyy-mm-dd or dd/mm/yyyy)"
// @Param to query string false "End date"
// @Param date_field query string false "due | accrual" default(due)
// @Param min_amount query string false "Minimum amount"
// @Param max_amount query string false "Maximum amount"
// @Param supplier_id query int false "Supplier ID"
// @Param document_type_id query int false "Document type ID"
// @Param bank_id query int false "Bank ID"
// @Param cost_center_id query int false "Cost center ID"
// @Param status query string false "Status"
// @Param document_number query string false "Document number contains"
// @Param invoice_number query string false "Invoice number contains"
// @Param supplier_name query string false "Supplier name contains"
// @Param search query string false "Free text over supplier, document and invoice"
// @Success 200 {object} services.PayableList
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /payables [get]
func (h *PayableHandler) Index(c *gin.Context) {
	query, ok := parseListQuery(c)
	if !ok {
		return
	}
	criteria, ok := parseCriteria(c)
	if !ok {
		return
	}
	list, err := h.payableService.Search(c.Request.Context(), query, criteria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get payable
// @Tags Payables
// @Produce json
// @Param id path int true "Payable ID"
// @Success 200 {object} models.PayableView
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /payables/{id} [get]
func (h *PayableHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.payableService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create payable
// @Description Accepts the form payload flat or nested under "payable"
// @Tags Payables
// @Accept json
// @Produce json
// @Param request body models.PayableInput true "Payable data"
// @Success 201 {object} models.PayableView
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /payables [post]
func (h *PayableHandler) Create(c *gin.Context) {
	var in models.PayableInput
	if err := BindNestedOrFlat(c, "payable", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.payableService.Create(c.Request.Context(), in, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update payable
// @Description A blank status keeps the current one
// @Tags Payables
// @Accept json
// @Produce json
// @Param id path int true "Payable ID"
// @Param request body models.PayableInput true "Payable data"
// @Success 200 {object} models.PayableView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /payables/{id} [put]
func (h *PayableHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in models.PayableInput
	if err := BindNestedOrFlat(c, "payable", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.payableService.Update(c.Request.Context(), id, in, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Change payable status
// @Description Pendente → Pago / Cancelado, and back to Pendente
// @Tags Payables
// @Accept json
// @Produce json
// @Param id path int true "Payable ID"
// @Param request body models.StatusInput true "Target status"
// @Success 200 {object} models.PayableView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /payables/{id}/status [patch]
func (h *PayableHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in models.StatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe o status", "field": "status"})
		return
	}
	view, err := h.payableService.SetStatus(c.Request.Context(), id, in.Status, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete payable
// @Tags Payables
// @Produce json
// @Param id path int true "Payable ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /payables/{id} [delete]
func (h *PayableHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.payableService.Delete(c.Request.Context(), id, actorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conta excluída"})
}

// @Summary Import payables
// @Description Upload an .xlsx, .xls or .csv sheet; every row is reported as created, skipped or failed
// @Tags Payables
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet"
// @Success 200 {object} services.ImportSummary
// @Failure 400 {object} map[string]string
// @Failure 415 {object} map[string]string
// @Security BearerAuth
// @Router /payables/import [post]
func (h *PayableHandler) Import(c *gin.Context) {
	if c.Request.ContentLength > 0 && c.Request.ContentLength > storage.MaxFileSize()+1<<20 {
		c.JSON(http.StatusBadRequest, gin.H{"error": storage.ErrFileTooLarge.Error(), "field": "file"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo obrigatório", "field": "file"})
		return
	}
	defer file.Close()

	summary, err := h.importService.Import(c.Request.Context(), file, header.Filename, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Export payables
// @Description The filtered ledger as an .xlsx workbook; accepts the list filters
// @Tags Payables
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Lanca_Export_yyyymmdd_hhmm.xlsx"
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /payables/export [get]
func (h *PayableHandler) Export(c *gin.Context) {
	query, ok := parseListQuery(c)
	if !ok {
		return
	}
	criteria, ok := parseCriteria(c)
	if !ok {
		return
	}
	data, filename, err := h.exportService.ExportXLSX(c.Request.Context(), query, criteria, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
