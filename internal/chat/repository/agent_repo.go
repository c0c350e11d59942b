package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devnow-platform/onboarding-backend/internal/chat/domain"
)

// AgentRepository stores the per-step chat personas.
type AgentRepository struct {
	db *pgxpool.Pool
}

func NewAgentRepository(db *pgxpool.Pool) *AgentRepository {
	return &AgentRepository{db: db}
}

const agentCols = `id::text, step_number, name, role, system_prompt, personality,
intro_message, fallback_responses, model, temperature, max_tokens, is_active,
created_at, updated_at`

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	var a domain.Agent
	err := row.Scan(&a.ID, &a.StepNumber, &a.Name, &a.Role, &a.SystemPrompt,
		&a.Personality, &a.IntroMessage, &a.FallbackResponses, &a.Model,
		&a.Temperature, &a.MaxTokens, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetActiveByStep returns the active persona for a step, nil when none is
// configured (callers fall back to built-in defaults).
func (r *AgentRepository) GetActiveByStep(ctx context.Context, stepNumber int) (*domain.Agent, error) {
	const q = `
select ` + agentCols + `
from ai_agents
where step_number = $1 and is_active
limit 1;`

	a, err := scanAgent(r.db.QueryRow(ctx, q, stepNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

// List returns all personas ordered by step.
func (r *AgentRepository) List(ctx context.Context) ([]domain.Agent, error) {
	const q = `
select ` + agentCols + `
from ai_agents
order by step_number;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// AgentUpdate carries the admin-editable persona fields. Nil means unchanged.
type AgentUpdate struct {
	Name              *string   `json:"name,omitempty"`
	Role              *string   `json:"role,omitempty"`
	SystemPrompt      *string   `json:"system_prompt,omitempty"`
	Personality       *string   `json:"personality,omitempty"`
	IntroMessage      *string   `json:"intro_message,omitempty"`
	FallbackResponses []string  `json:"fallback_responses,omitempty"`
	Model             *string   `json:"model,omitempty"`
	Temperature       *float64  `json:"temperature,omitempty"`
	MaxTokens         *int      `json:"max_tokens,omitempty"`
	IsActive          *bool     `json:"is_active,omitempty"`
}

// UpdateByStep patches the persona for a step and returns the updated row.
func (r *AgentRepository) UpdateByStep(ctx context.Context, stepNumber int, upd AgentUpdate) (*domain.Agent, error) {
	const q = `
update ai_agents
set
  name = coalesce($2, name),
  role = coalesce($3, role),
  system_prompt = coalesce($4, system_prompt),
  personality = coalesce($5, personality),
  intro_message = coalesce($6, intro_message),
  fallback_responses = coalesce($7, fallback_responses),
  model = coalesce($8, model),
  temperature = coalesce($9, temperature),
  max_tokens = coalesce($10, max_tokens),
  is_active = coalesce($11, is_active),
  updated_at = now()
where step_number = $1
returning ` + agentCols + `;`

	a, err := scanAgent(r.db.QueryRow(ctx, q, stepNumber,
		upd.Name, upd.Role, upd.SystemPrompt, upd.Personality, upd.IntroMessage,
		upd.FallbackResponses, upd.Model, upd.Temperature, upd.MaxTokens, upd.IsActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAgentNotFound
	}
	return a, err
}
