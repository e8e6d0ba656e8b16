package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"drop-arbiter/internal/pkg/cookie"
	"drop-arbiter/internal/usecase"
	"drop-arbiter/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxOperatorIDKey   = "operator_id"
	ctxBusinessNameKey = "business_name"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireOperator accepts a Bearer token or the access token cookie and
// rejects tokens whose operator no longer exists.
func (m *AuthMiddleware) RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = cookie.GetAccessToken(c)
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			return
		}

		identity, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(ctxOperatorIDKey, identity.OperatorID)
		c.Set(ctxBusinessNameKey, identity.BusinessName)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetOperatorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxOperatorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetActor returns the authenticated operator as a command actor.
func GetActor(c *gin.Context) (commands.Actor, bool) {
	id, ok := GetOperatorID(c)
	if !ok {
		return commands.Actor{}, false
	}
	name := c.GetString(ctxBusinessNameKey)
	return commands.Actor{OperatorID: id, BusinessName: name}, true
}

// SetOperator is used by tests and trusted internal routes.
func SetOperator(c *gin.Context, operatorID uuid.UUID, businessName string) {
	c.Set(ctxOperatorIDKey, operatorID)
	c.Set(ctxBusinessNameKey, businessName)
}
