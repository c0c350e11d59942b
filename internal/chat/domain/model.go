package domain

import (
	"encoding/json"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn scoped to a (project, step) pair. History is
// replaced wholesale on save, matching the panel's autosave model.
type Message struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"project_id"`
	StepNumber int             `json:"step_number"`
	Role       string          `json:"role"`
	Content    string          `json:"content"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// Agent is the persona configuration driving the chat panel for one step.
// It is a configuration record, not a process.
type Agent struct {
	ID                string    `json:"id"`
	StepNumber        int       `json:"step_number"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	SystemPrompt      string    `json:"system_prompt"`
	Personality       string    `json:"personality"`
	IntroMessage      *string   `json:"intro_message,omitempty"`
	FallbackResponses []string  `json:"fallback_responses"`
	Model             string    `json:"model"`
	Temperature       float64   `json:"temperature"`
	MaxTokens         int       `json:"max_tokens"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FallbackText returns the agent's first fallback response, or a generic
// line when none is configured. The chat flow always answers with something.
func (a *Agent) FallbackText() string {
	if a != nil && len(a.FallbackResponses) > 0 && a.FallbackResponses[0] != "" {
		return a.FallbackResponses[0]
	}
	return "I'm having trouble responding right now. Please try again."
}
