//go:build unit

package api_test

import (
	"net/http"

	"pricewatch/internal/domain/user"

	"github.com/gin-gonic/gin"
)

// fakeAuth stands in for RequireAuth: any bearer token authenticates as
// *caller.
func fakeAuth(caller *user.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("principal", *caller)
		c.Set("user_id", caller.ID)
		c.Set("user_role", caller.Role)
		c.Next()
	}
}
