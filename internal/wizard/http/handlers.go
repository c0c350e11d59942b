package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devnow-platform/onboarding-backend/internal/auth"
	projdomain "github.com/devnow-platform/onboarding-backend/internal/projects/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/registry"
)

func stepParams(c *gin.Context) (projectID string, stepNumber int, ok bool) {
	projectID = strings.TrimSpace(c.Param("projectId"))
	n, err := strconv.Atoi(c.Param("stepNumber"))
	if projectID == "" || err != nil || n < 1 || n > registry.TotalSteps {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id or step number"})
		return "", 0, false
	}
	return projectID, n, true
}

// listStepDefs serves the static wizard schema the frontend renders forms from.
func (h *Handler) listStepDefs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "steps": registry.Steps()})
}

func (h *Handler) getStep(c *gin.Context) {
	projectID, stepNumber, ok := stepParams(c)
	if !ok {
		return
	}

	userID := auth.UserDBID(c)
	rec, err := h.flow.GetStep(c.Request.Context(), userID, projectID, stepNumber)
	if err != nil {
		if errors.Is(err, projdomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "step": rec})
}

type saveStepReq struct {
	FormData domain.FormData `json:"form_data"`
	Status   string          `json:"status,omitempty"`
}

func (h *Handler) saveStep(c *gin.Context) {
	projectID, stepNumber, ok := stepParams(c)
	if !ok {
		return
	}

	var req saveStepReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserDBID(c)
	rec, err := h.flow.SaveStep(c.Request.Context(), userID, projectID, stepNumber, req.FormData, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, projdomain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "step": rec})
}

type advanceReq struct {
	FormData domain.FormData `json:"form_data,omitempty"`
}

func (h *Handler) advance(c *gin.Context) {
	projectID, stepNumber, ok := stepParams(c)
	if !ok {
		return
	}

	// A bodyless POST advances with the stored draft.
	var req advanceReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
	}

	userID := auth.UserDBID(c)
	rec, project, err := h.flow.Advance(c.Request.Context(), userID, projectID, stepNumber, req.FormData)
	if err != nil {
		switch incomplete, ok := domain.IsIncompleteForm(err); {
		case ok:
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":             false,
				"error":          "required fields missing",
				"missing_fields": incomplete.MissingFields,
			})
		case errors.Is(err, projdomain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "step": rec, "project": project})
}

func (h *Handler) listSteps(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("projectId"))
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing project id"})
		return
	}

	userID := auth.UserDBID(c)
	steps, err := h.flow.ListSteps(c.Request.Context(), userID, projectID)
	if err != nil {
		if errors.Is(err, projdomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "steps": steps})
}

type generatePRDReq struct {
	ProjectID string `json:"project_id"`
}

func (h *Handler) generatePRD(c *gin.Context) {
	var req generatePRDReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProjectID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserDBID(c)
	content, err := h.prd.Generate(c.Request.Context(), userID, strings.TrimSpace(req.ProjectID))
	if err != nil {
		if errors.Is(err, projdomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "document": content})
}

func (h *Handler) listOutputs(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("projectId"))
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing project id"})
		return
	}

	userID := auth.UserDBID(c)
	outputs, err := h.prd.Outputs(c.Request.Context(), userID, projectID)
	if err != nil {
		if errors.Is(err, projdomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if outputs == nil {
		outputs = []domain.GeneratedOutput{}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "outputs": outputs})
}
