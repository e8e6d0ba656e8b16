//go:build unit

package api_test

import (
	"net/http"

	"drop-arbiter/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const testBusinessName = "Iron Forge Fitness"

// fakeAuth accepts any bearer header and authenticates as operatorID.
func fakeAuth(operatorID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		middleware.SetOperator(c, operatorID, testBusinessName)
		c.Next()
	}
}
