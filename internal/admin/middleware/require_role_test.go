package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/devnow-platform/onboarding-backend/internal/auth"
	"github.com/devnow-platform/onboarding-backend/internal/users"
)

func roleRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(auth.CtxUserRole, role)
		}
		c.Next()
	})
	r.GET("/admin/ping", RequireRole(users.RoleAdmin, users.RoleSuperAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name string
		role string
		want int
	}{
		{"admin passes", users.RoleAdmin, http.StatusOK},
		{"super admin passes", users.RoleSuperAdmin, http.StatusOK},
		{"client is rejected", users.RoleClient, http.StatusForbidden},
		{"missing role is rejected", "", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := roleRouter(tc.role)

			req := httptest.NewRequest("GET", "/admin/ping", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.want, rr.Code)
		})
	}
}
