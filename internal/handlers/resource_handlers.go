package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/services"
)

// ReferenceHandler serves CRUD of one lookup table. key is the JSON
// envelope of list and single responses ("suppliers", "banks", ...).
type ReferenceHandler[T models.Reference] struct {
	service *services.ReferenceService[T]
	key     string
}

func NewReferenceHandler[T models.Reference](service *services.ReferenceService[T], key string) *ReferenceHandler[T] {
	return &ReferenceHandler[T]{service: service, key: key}
}

// @Summary List reference records
// @Description List suppliers, banks, document_types, cost_centers, installments or statuses
// @Tags References
// @Produce json
// @Param resource path string true "suppliers | banks | document_types | cost_centers | installments | statuses"
// @Param order_by query string false "Column, prefixed with - for descending"
// @Param limit query int false "Maximum number of rows"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /{resource} [get]
func (h *ReferenceHandler[T]) Index(c *gin.Context) {
	query, ok := parseListQuery(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.key: items})
}

// @Summary Get reference record
// @Tags References
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /{resource}/{id} [get]
func (h *ReferenceHandler[T]) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Create reference record
// @Tags References
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /{resource} [post]
func (h *ReferenceHandler[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &item, actorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary Update reference record
// @Tags References
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /{resource}/{id} [put]
func (h *ReferenceHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, &item, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete reference record
// @Description Ledger records pointing to it keep the id and show a placeholder label
// @Tags References
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /{resource}/{id} [delete]
func (h *ReferenceHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, actorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registro excluído"})
}

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Audit Logs
// @Description Get a paginated list of ledger audit logs
// @Tags Audit
// @Produce json
// @Param entity query string false "Payable, Supplier, Bank, ..."
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /audits [get]
func (h *AuditHandler) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	logs, total, err := h.auditService.List(c.Request.Context(), c.Query("entity"), perPage, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"audits": logs, "pagination": gin.H{"total": total, "page": page, "per_page": perPage}})
}
