package auth

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/devnow-platform/onboarding-backend/internal/users"
)

const (
	CtxFirebaseUID = "firebase_uid"
	CtxUserDBID    = "user_db_id"
	CtxUserRole    = "user_role"
)

// WithUser authenticates the request and upserts the user row, storing the
// database id and role in the Gin context.
//
// With a Firebase client it verifies the Bearer ID token. With a nil client
// (no credentials configured) it falls back to X-User-* headers for
// development, defaulting to "demo-user".
func WithUser(authClient *fbauth.Client, userRepo *users.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upsert users.UpsertUser

		if authClient != nil {
			token := extractToken(c)
			if token == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
				c.Abort()
				return
			}

			decoded, err := authClient.VerifyIDToken(context.Background(), token)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
				c.Abort()
				return
			}

			upsert.FirebaseUID = decoded.UID
			if email, ok := decoded.Claims["email"].(string); ok {
				upsert.Email = email
			}
			if name, ok := decoded.Claims["name"].(string); ok {
				upsert.FullName = name
			}
		} else {
			fuid := strings.TrimSpace(c.GetHeader("X-User-Id"))
			if fuid == "" {
				fuid = "demo-user"
			}
			upsert = users.UpsertUser{
				FirebaseUID: fuid,
				Email:       c.GetHeader("X-User-Email"),
				FullName:    c.GetHeader("X-User-Name"),
				CompanyName: c.GetHeader("X-User-Company"),
				Phone:       c.GetHeader("X-User-Phone"),
			}
		}

		uid, role, err := userRepo.EnsureUser(c.Request.Context(), upsert)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ensure user: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(CtxFirebaseUID, upsert.FirebaseUID)
		c.Set(CtxUserDBID, uid)
		c.Set(CtxUserRole, role)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
