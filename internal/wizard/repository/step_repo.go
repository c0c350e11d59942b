package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	projdomain "github.com/devnow-platform/onboarding-backend/internal/projects/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/registry"
)

// StepRepository persists wizard step records. Every method is owner-scoped:
// the project must belong to userID or ErrNotFound comes back.
type StepRepository struct {
	db *pgxpool.Pool
}

func NewStepRepository(db *pgxpool.Pool) *StepRepository {
	return &StepRepository{db: db}
}

const stepCols = `id::text, project_id::text, step_number, step_name, status, form_data, completed_at, created_at, updated_at`

func scanStep(row pgx.Row) (*domain.StepRecord, error) {
	var s domain.StepRecord
	var formData []byte
	err := row.Scan(&s.ID, &s.ProjectID, &s.StepNumber, &s.StepName, &s.Status,
		&formData, &s.CompletedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(formData) > 0 {
		if err := json.Unmarshal(formData, &s.FormData); err != nil {
			return nil, fmt.Errorf("decode form_data: %w", err)
		}
	}
	if s.FormData == nil {
		s.FormData = domain.FormData{}
	}
	return &s, nil
}

// ownedProject resolves the project under the caller's ownership inside the
// given queryable (pool or tx).
func ownedProject(ctx context.Context, q interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, userID, projectID string) (string, int, int, error) {
	const sql = `
select id::text, current_step, total_steps
from projects
where id = $1::uuid and user_id = $2::uuid;`

	var id string
	var currentStep, totalSteps int
	err := q.QueryRow(ctx, sql, projectID, userID).Scan(&id, &currentStep, &totalSteps)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", 0, 0, projdomain.ErrNotFound
	}
	if err != nil {
		return "", 0, 0, err
	}
	return id, currentStep, totalSteps, nil
}

// Get fetches a step record, nil when no row exists yet (not started).
func (r *StepRepository) Get(ctx context.Context, userID, projectID string, stepNumber int) (*domain.StepRecord, error) {
	if registry.Step(stepNumber) == nil {
		return nil, domain.ErrInvalidStep
	}
	if _, _, _, err := ownedProject(ctx, r.db, userID, projectID); err != nil {
		return nil, err
	}

	const q = `
select ` + stepCols + `
from project_steps
where project_id = $1::uuid and step_number = $2;`

	s, err := scanStep(r.db.QueryRow(ctx, q, projectID, stepNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return s, err
}

// ListByProject returns all existing step records for a project in order.
func (r *StepRepository) ListByProject(ctx context.Context, userID, projectID string) ([]domain.StepRecord, error) {
	if _, _, _, err := ownedProject(ctx, r.db, userID, projectID); err != nil {
		return nil, err
	}

	const q = `
select ` + stepCols + `
from project_steps
where project_id = $1::uuid
order by step_number;`

	rows, err := r.db.Query(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.StepRecord, 0, registry.TotalSteps)
	for rows.Next() {
		s, err := scanStep(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Upsert creates or updates a step record. completed_at is set only when the
// target status is completed; any other save clears it, so a draft save on a
// completed step reverts the step.
func (r *StepRepository) Upsert(ctx context.Context, userID, projectID string, stepNumber int, formData domain.FormData, status string) (*domain.StepRecord, error) {
	def := registry.Step(stepNumber)
	if def == nil {
		return nil, domain.ErrInvalidStep
	}
	switch status {
	case domain.StepNotStarted, domain.StepInProgress, domain.StepCompleted:
	default:
		return nil, domain.ErrInvalidStatus
	}
	if _, _, _, err := ownedProject(ctx, r.db, userID, projectID); err != nil {
		return nil, err
	}

	data, err := json.Marshal(formData)
	if err != nil {
		return nil, fmt.Errorf("encode form_data: %w", err)
	}

	const q = `
insert into project_steps (project_id, step_number, step_name, status, form_data, completed_at)
values ($1::uuid, $2, $3, $4, $5,
        case when $4 = 'completed' then now() else null end)
on conflict (project_id, step_number) do update
set
  status = excluded.status,
  form_data = excluded.form_data,
  completed_at = case when excluded.status = 'completed' then now() else null end,
  updated_at = now()
returning ` + stepCols + `;`

	return scanStep(r.db.QueryRow(ctx, q, projectID, stepNumber, def.Title, status, data))
}

// CompleteAndAdvance marks the step completed and moves the project pointer
// forward in a single transaction. The step data is assumed validated by the
// caller; no mutation happens if any statement fails.
func (r *StepRepository) CompleteAndAdvance(ctx context.Context, userID, projectID string, stepNumber int, formData domain.FormData) (*domain.StepRecord, *projdomain.Project, error) {
	def := registry.Step(stepNumber)
	if def == nil {
		return nil, nil, domain.ErrInvalidStep
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, _, totalSteps, err := ownedProject(ctx, tx, userID, projectID)
	if err != nil {
		return nil, nil, err
	}

	data, err := json.Marshal(formData)
	if err != nil {
		return nil, nil, fmt.Errorf("encode form_data: %w", err)
	}

	const sq = `
insert into project_steps (project_id, step_number, step_name, status, form_data, completed_at)
values ($1::uuid, $2, $3, 'completed', $4, now())
on conflict (project_id, step_number) do update
set status = 'completed', form_data = excluded.form_data, completed_at = now(), updated_at = now()
returning ` + stepCols + `;`

	step, err := scanStep(tx.QueryRow(ctx, sq, projectID, stepNumber, def.Title, data))
	if err != nil {
		return nil, nil, err
	}

	nextStep := stepNumber + 1
	if nextStep > totalSteps {
		nextStep = totalSteps
	}
	status := projdomain.StatusInProgress
	if stepNumber == totalSteps {
		status = projdomain.StatusCompleted
	}

	const pq = `
update projects
set current_step = $2, status = $3, updated_at = now()
where id = $1::uuid
returning id::text, user_id::text, title, description, status, current_step, total_steps, metadata, created_at, updated_at;`

	var p projdomain.Project
	if err := tx.QueryRow(ctx, pq, projectID, nextStep, status).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description, &p.Status,
		&p.CurrentStep, &p.TotalSteps, &p.Metadata, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}
	return step, &p, nil
}
