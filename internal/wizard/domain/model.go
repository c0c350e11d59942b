package domain

import "time"

// Step record status values. A step moves not_started → in_progress →
// completed; resaving a completed step as a draft reverts it to in_progress.
const (
	StepNotStarted = "not_started"
	StepInProgress = "in_progress"
	StepCompleted  = "completed"
)

// FormData is the free-form field map a client submits for one step. Values
// are either strings or string arrays (multiselect), validated against the
// step registry.
type FormData map[string]any

// StepRecord is the persisted form data and status for one (project, step).
type StepRecord struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	StepNumber  int        `json:"step_number"`
	StepName    string     `json:"step_name"`
	Status      string     `json:"status"`
	FormData    FormData   `json:"form_data"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GeneratedOutput is one produced document, append-only per generation.
type GeneratedOutput struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	OutputType string    `json:"output_type"`
	Content    string    `json:"content"`
	Metadata   Metadata  `json:"metadata"`
	CreatedAt  time.Time `json:"created_at"`
}

type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`
}
