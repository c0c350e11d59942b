package http

import "github.com/devnow-platform/onboarding-backend/internal/wizard/service"

// Handler bundles the dependencies for wizard HTTP endpoints.
type Handler struct {
	flow *service.FlowService
	prd  *service.PRDService
}

func New(flow *service.FlowService, prd *service.PRDService) *Handler {
	return &Handler{flow: flow, prd: prd}
}
