package domain

import (
	"encoding/json"
	"time"
)

// Project status values. Transitions run forward (draft → in_progress →
// completed); archived is reachable only through the explicit archive call.
const (
	StatusDraft      = "draft"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusArchived   = "archived"
)

// Project is one client onboarding engagement owned by a single user.
type Project struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Status      string          `json:"status"`
	CurrentStep int             `json:"current_step"`
	TotalSteps  int             `json:"total_steps"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Owner display fields joined in where a view needs them.
type Owner struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
