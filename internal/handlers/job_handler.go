package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lanca/lanca-api/internal/services"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobSvc *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobSvc,
	}
}

// Status returns the current worker status
// @Summary Get background job status
// @Description Worker counters plus the last run of each scheduled job (import purge, cache warm-up)
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string
// @Router /jobs/status [get]
func (h *JobHandler) Status(c *gin.Context) {
	if h.jobService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Worker desativado"})
		return
	}
	c.JSON(http.StatusOK, h.jobService.GetStatus())
}
