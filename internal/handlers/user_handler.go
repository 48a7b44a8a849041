package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lanca/lanca-api/internal/middleware"
	"github.com/lanca/lanca-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary Current user
// @Description Identity of the bearer token with the role of the local profile
// @Tags Users
// @Produce json
// @Success 200 {object} models.CurrentUser
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrUnauthorized.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary List Users
// @Description Local profiles of identity-provider accounts
// @Tags Users
// @Produce json
// @Param order_by query string false "Column, prefixed with - for descending"
// @Param limit query int false "Maximum number of rows"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) Index(c *gin.Context) {
	query, ok := parseListQuery(c)
	if !ok {
		return
	}
	users, err := h.userService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
