package http

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/devnow-platform/onboarding-backend/internal/auth"
)

// RateLimit caps assistant calls per user. Limiters are kept in-process;
// entries are never evicted, which is acceptable at onboarding traffic levels.
func RateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = map[string]*rate.Limiter{}
	)

	return func(c *gin.Context) {
		key := auth.UserDBID(c)
		if key == "" {
			key = c.ClientIP()
		}

		mu.Lock()
		l, ok := limiters[key]
		if !ok {
			l = rate.NewLimiter(limit, burst)
			limiters[key] = l
		}
		mu.Unlock()

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
