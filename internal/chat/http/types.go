package http

import "github.com/devnow-platform/onboarding-backend/internal/chat/service"

// Handler bundles the dependencies for chat HTTP endpoints.
type Handler struct {
	chat *service.ChatService
}

func New(chat *service.ChatService) *Handler {
	return &Handler{chat: chat}
}
