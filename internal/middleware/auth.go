package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/pkg/logger"
)

// Claims represents the identity provider's token claims. Role is the
// provider role ("authenticated"); the application role comes from the
// local profile.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserResolver maps verified claims to the current user
type UserResolver interface {
	Resolve(ctx context.Context, subject, email string) (*models.CurrentUser, error)
}

const currentUserKey = "currentUser"

// Auth returns a middleware that verifies bearer tokens issued by the
// identity provider
func Auth(jwtSecret string, resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""

		if authHeader == "" {
			// report downloads are opened as plain links
			tokenString = c.Query("token")
			if tokenString == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Cabeçalho Authorization obrigatório",
				})
				return
			}
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Formato do cabeçalho Authorization inválido",
				})
				return
			}
			tokenString = parts[1]
		}

		claims, err := validateToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}

		user := &models.CurrentUser{ID: claims.Subject, Email: claims.Email, Role: models.RoleUser, Name: claims.Email}
		if resolver != nil {
			resolved, err := resolver.Resolve(c.Request.Context(), claims.Subject, claims.Email)
			if err != nil {
				logger.Error("failed to resolve user profile", "subject", claims.Subject, "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Não foi possível carregar o perfil do usuário",
				})
				return
			}
			user = resolved
		}

		c.Set(currentUserKey, user)
		c.Set("userEmail", user.Email)
		c.Set("userRole", user.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// validateToken parses and validates a JWT token string
func validateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("sessão expirada")
		}
		return nil, errors.New("token inválido")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errors.New("token inválido")
	}

	return claims, nil
}

// GetCurrentUser returns the user set by Auth, or nil
func GetCurrentUser(c *gin.Context) *models.CurrentUser {
	user, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	return user.(*models.CurrentUser)
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	return c.GetString("userEmail")
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	return c.GetString("userRole")
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == models.RoleAdmin
}

// RequireAdmin returns a middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Você não tem acesso a esta seção",
			})
			return
		}
		c.Next()
	}
}
