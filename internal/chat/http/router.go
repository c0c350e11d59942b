package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Register attaches chat and agent routes to the given router group.
// Assistant endpoints are rate limited per user.
func (h *Handler) Register(chat, agents *gin.RouterGroup) {
	chat.GET("/:projectId/:stepNumber", h.history)
	chat.POST("/:projectId/:stepNumber", h.saveHistory)

	limited := chat.Group("", RateLimit(rate.Limit(1), 5))
	limited.POST("/ai-response", h.aiResponse)
	limited.POST("/generate-insights", h.generateInsights)

	agents.GET("/:stepNumber", h.agent)
}
