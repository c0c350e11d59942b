// Package assistant defines the pluggable text-generation boundary behind the
// chat panel. The wizard flow only sees this interface; the rule-based engine
// and the Gemini-backed engine are interchangeable behind it.
package assistant

import (
	"context"

	"github.com/devnow-platform/onboarding-backend/internal/chat/domain"
)

// Turn is one prior message in the conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request asks for an assistant reply given the step context.
type Request struct {
	StepNumber int
	FormData   map[string]any
	History    []Turn
	Agent      *domain.Agent
}

// Result is the reply plus at most one batch of field suggestions. The
// caller applies suggestions to empty fields only; a filled field is never
// overwritten.
type Result struct {
	Response    string
	Suggestions map[string]any
}

// InsightRequest asks for step-level analysis of the current form data.
type InsightRequest struct {
	StepNumber int
	FormData   map[string]any
	Agent      *domain.Agent
}

type InsightResult struct {
	Insights    string
	Suggestions map[string]any
}

// Engine produces assistant replies and insights. Implementations must not
// mutate the request's form data.
type Engine interface {
	Respond(ctx context.Context, req Request) (*Result, error)
	Insights(ctx context.Context, req InsightRequest) (*InsightResult, error)
}

// FilterToEmpty drops suggestions whose target field already holds a value.
// A filled field is never offered an overwrite; the inputs are not modified.
// Nil when nothing survives, so empty batches stay out of responses.
func FilterToEmpty(formData, suggestions map[string]any) map[string]any {
	var kept map[string]any
	for k, v := range suggestions {
		if isEmpty(formData[k]) {
			if kept == nil {
				kept = make(map[string]any, len(suggestions))
			}
			kept[k] = v
		}
	}
	return kept
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	default:
		return false
	}
}
