package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lanca/lanca-api/internal/datecalc"
	"github.com/lanca/lanca-api/internal/ledger"
)

// UtilsHandler serves the date and arithmetic widgets of the overview page
type UtilsHandler struct{}

func NewUtilsHandler() *UtilsHandler {
	return &UtilsHandler{}
}

// TermScheduleRequest is the payload of the term schedule widget
type TermScheduleRequest struct {
	Base      string   `json:"base" binding:"required"`
	Terms     []string `json:"terms"`
	QuickFill int      `json:"quick_fill"`
}

// CalculateRequest is the payload of the calculator widget. Operands are
// strings so "1.234,56" is accepted.
type CalculateRequest struct {
	A  string `json:"a" binding:"required"`
	Op string `json:"op" binding:"required"`
	B  string `json:"b" binding:"required"`
}

// @Summary Add days
// @Tags Utils
// @Produce json
// @Param base query string true "Base date"
// @Param days query int true "Days to add; negative subtracts"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /utils/add_days [get]
func (h *UtilsHandler) AddDays(c *gin.Context) {
	base, ok := queryDate(c, "base")
	if !ok {
		return
	}
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe a quantidade de dias", "field": "days"})
		return
	}
	result := datecalc.AddDays(base, days)
	c.JSON(http.StatusOK, gin.H{
		"date":      result.Format("2006-01-02"),
		"long_date": datecalc.LongDate(result),
		"weekday":   datecalc.WeekdayName(result),
	})
}

// @Summary Count days
// @Description Signed difference end - start in calendar days
// @Tags Utils
// @Produce json
// @Param start query string true "Start date"
// @Param end query string true "End date"
// @Success 200 {object} datecalc.DayCount
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /utils/count_days [get]
func (h *UtilsHandler) CountDays(c *gin.Context) {
	start, ok := queryDate(c, "start")
	if !ok {
		return
	}
	end, ok := queryDate(c, "end")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datecalc.CountDays(start, end))
}

// @Summary Term schedule
// @Description Due date per term ("30/60/90"); quick_fill N fills N, 2N … 12N
// @Tags Utils
// @Accept json
// @Produce json
// @Param request body TermScheduleRequest true "Base date and terms"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /utils/term_schedule [post]
func (h *UtilsHandler) TermSchedule(c *gin.Context) {
	var req TermScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe a data base", "field": "base"})
		return
	}
	base, err := ledger.ParseDate(req.Base)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data base inválida", "field": "base"})
		return
	}
	terms := req.Terms
	if req.QuickFill > 0 {
		terms = datecalc.QuickFill(req.QuickFill)
	}
	schedule, err := datecalc.TermSchedule(base, terms)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "terms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"terms":    terms,
		"term":     datecalc.TermString(terms),
		"schedule": schedule,
	})
}

// @Summary Calculator
// @Description a op b with + - * / %; division by zero is an error
// @Tags Utils
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Operands and operator"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /utils/calculate [post]
func (h *UtilsHandler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := ledger.ParseAmount(req.A)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número inválido", "field": "a"})
		return
	}
	b, err := ledger.ParseAmount(req.B)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número inválido", "field": "b"})
		return
	}

	result, err := datecalc.Calculate(a, req.Op, b)
	switch {
	case errors.Is(err, datecalc.ErrDivisionByZero):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Erro: " + err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "op"})
		return
	}
	// display precision of the calculator widget
	c.JSON(http.StatusOK, gin.H{"result": result.Round(10).String()})
}

func queryDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe a data", "field": name})
		return time.Time{}, false
	}
	parsed, err := ledger.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida", "field": name})
		return time.Time{}, false
	}
	return parsed, true
}
