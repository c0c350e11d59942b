package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devnow-platform/onboarding-backend/internal/auth"
)

// RequireRole rejects requests whose authenticated user does not hold one of
// the given roles. Runs after auth.WithUser.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allowed[auth.UserRole(c)]; !ok {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
