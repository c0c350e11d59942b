package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devnow-platform/onboarding-backend/internal/assistant"
	"github.com/devnow-platform/onboarding-backend/internal/auth"
	"github.com/devnow-platform/onboarding-backend/internal/chat/domain"
	projdomain "github.com/devnow-platform/onboarding-backend/internal/projects/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/registry"
)

func chatParams(c *gin.Context) (projectID string, stepNumber int, ok bool) {
	projectID = strings.TrimSpace(c.Param("projectId"))
	n, err := strconv.Atoi(c.Param("stepNumber"))
	if projectID == "" || err != nil || n < 1 || n > registry.TotalSteps {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id or step number"})
		return "", 0, false
	}
	return projectID, n, true
}

func (h *Handler) history(c *gin.Context) {
	projectID, stepNumber, ok := chatParams(c)
	if !ok {
		return
	}

	userID := auth.UserDBID(c)
	messages, err := h.chat.History(c.Request.Context(), userID, projectID, stepNumber)
	if err != nil {
		if errors.Is(err, projdomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "messages": messages})
}

type saveHistoryReq struct {
	Messages []domain.Message `json:"messages"`
}

func (h *Handler) saveHistory(c *gin.Context) {
	projectID, stepNumber, ok := chatParams(c)
	if !ok {
		return
	}

	var req saveHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	for _, m := range req.Messages {
		if m.Role != domain.RoleUser && m.Role != domain.RoleAssistant {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid message role"})
			return
		}
	}

	userID := auth.UserDBID(c)
	if err := h.chat.SaveHistory(c.Request.Context(), userID, projectID, stepNumber, req.Messages); err != nil {
		if errors.Is(err, projdomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type aiResponseReq struct {
	StepNumber int              `json:"step_number"`
	FormData   map[string]any   `json:"form_data,omitempty"`
	History    []assistant.Turn `json:"history,omitempty"`
}

func (h *Handler) aiResponse(c *gin.Context) {
	var req aiResponseReq
	if err := c.ShouldBindJSON(&req); err != nil || req.StepNumber < 1 || req.StepNumber > registry.TotalSteps {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	result, err := h.chat.Respond(c.Request.Context(), req.StepNumber, req.FormData, req.History)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"response":    result.Response,
		"suggestions": result.Suggestions,
	})
}

type insightsReq struct {
	StepNumber int            `json:"step_number"`
	FormData   map[string]any `json:"form_data,omitempty"`
}

func (h *Handler) generateInsights(c *gin.Context) {
	var req insightsReq
	if err := c.ShouldBindJSON(&req); err != nil || req.StepNumber < 1 || req.StepNumber > registry.TotalSteps {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	result, err := h.chat.Insights(c.Request.Context(), req.StepNumber, req.FormData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"insights":    result.Insights,
		"suggestions": result.Suggestions,
	})
}

func (h *Handler) agent(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("stepNumber"))
	if err != nil || n < 1 || n > registry.TotalSteps {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid step number"})
		return
	}

	agent, err := h.chat.Agent(c.Request.Context(), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "agent": agent})
}
