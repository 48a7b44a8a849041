package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/middleware"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/internal/services"
	"github.com/lanca/lanca-api/pkg/logger"
)

// Handlers holds all handler instances
type Handlers struct {
	Health       *HealthHandler
	User         *UserHandler
	Supplier     *ReferenceHandler[models.Supplier]
	Bank         *ReferenceHandler[models.Bank]
	DocumentType *ReferenceHandler[models.DocumentType]
	CostCenter   *ReferenceHandler[models.CostCenter]
	Installment  *ReferenceHandler[models.Installment]
	Status       *ReferenceHandler[models.StatusOption]
	Payable      *PayableHandler
	Report       *ReportHandler
	Utils        *UtilsHandler
	Audit        *AuditHandler
	Job          *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(),
		User:         NewUserHandler(svcs.User),
		Supplier:     NewReferenceHandler(svcs.Supplier, "suppliers"),
		Bank:         NewReferenceHandler(svcs.Bank, "banks"),
		DocumentType: NewReferenceHandler(svcs.DocumentType, "document_types"),
		CostCenter:   NewReferenceHandler(svcs.CostCenter, "cost_centers"),
		Installment:  NewReferenceHandler(svcs.Installment, "installments"),
		Status:       NewReferenceHandler(svcs.Status, "statuses"),
		Payable:      NewPayableHandler(svcs.Payable, svcs.Import, svcs.Export),
		Report:       NewReportHandler(svcs.Report),
		Utils:        NewUtilsHandler(),
		Audit:        NewAuditHandler(svcs.Audit),
		Job:          NewJobHandler(svcs.Job),
	}
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// @Summary Health Check
// @Description Checks if the API is running
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "lanca-api",
		"version": "1.0.0",
	})
}

// NotFound answers unknown routes; the front end sends the user back to
// the dashboard
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":    "Página não encontrada",
		"redirect": "/dashboard",
	})
}

// respondError maps service errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, repository.ErrInvalidSortField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "order_by"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNothingToExport):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnsupportedFile):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido", "field": name})
		return 0, false
	}
	return uint(id), true
}

// parseListQuery reads order_by and limit
func parseListQuery(c *gin.Context) (*repository.ListQuery, bool) {
	query := repository.NewListQuery()
	query.OrderBy = c.Query("order_by")
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Limite inválido", "field": "limit"})
			return nil, false
		}
		query.Limit = limit
	}
	return query, true
}

// parseCriteria reads the ledger filter parameters
func parseCriteria(c *gin.Context) (ledger.Criteria, bool) {
	criteria, err := ledger.ParseCriteria(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return ledger.Criteria{}, false
	}
	return criteria, true
}

// actorFrom identifies the caller for the audit log
func actorFrom(c *gin.Context) services.Actor {
	return services.Actor{
		Email:     middleware.GetUserEmail(c),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
