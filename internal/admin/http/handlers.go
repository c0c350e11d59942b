package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devnow-platform/onboarding-backend/internal/admin/service"
	"github.com/devnow-platform/onboarding-backend/internal/chat/domain"
	chatrepo "github.com/devnow-platform/onboarding-backend/internal/chat/repository"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/registry"
)

// Handler bundles the dependencies for admin HTTP endpoints.
type Handler struct {
	admin *service.AdminService
}

func New(admin *service.AdminService) *Handler {
	return &Handler{admin: admin}
}

func (h *Handler) dashboardStats(c *gin.Context) {
	dash, err := h.admin.DashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": dash.Stats, "recent_activity": dash.RecentActivity})
}

func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.admin.Projects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) listAgents(c *gin.Context) {
	items, err := h.admin.Agents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "agents": items})
}

func (h *Handler) updateAgent(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("stepNumber"))
	if err != nil || n < 1 || n > registry.TotalSteps {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid step number"})
		return
	}

	var upd chatrepo.AgentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	agent, err := h.admin.UpdateAgent(c.Request.Context(), n, upd)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "agent not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "agent": agent})
}

// Register attaches admin routes to the given router group. The group is
// expected to carry the role gate already.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.dashboardStats)
	rg.GET("/projects", h.listProjects)
	rg.GET("/agents", h.listAgents)
	rg.PUT("/agents/:stepNumber", h.updateAgent)
}
