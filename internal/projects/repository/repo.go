package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devnow-platform/onboarding-backend/internal/projects/domain"
	wizdomain "github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/registry"
)

// ProjectRepository provides owner-scoped persistence for projects.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectCols = `id::text, user_id::text, title, description, status, current_step, total_steps, metadata, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Status,
		&p.CurrentStep, &p.TotalSteps, &p.Metadata, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a project and its initial step-1 record in one transaction.
func (r *ProjectRepository) Create(ctx context.Context, userID, title string, description *string) (*domain.Project, error) {
	if title == "" {
		return nil, fmt.Errorf("title required")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
insert into projects (user_id, title, description, status, current_step, total_steps)
values ($1::uuid, $2, $3, $4, 1, $5)
returning ` + projectCols + `;`

	p, err := scanProject(tx.QueryRow(ctx, q, userID, title, description, domain.StatusDraft, registry.TotalSteps))
	if err != nil {
		return nil, err
	}

	step1 := registry.Step(1)
	const sq = `
insert into project_steps (project_id, step_number, step_name, status, form_data)
values ($1::uuid, 1, $2, $3, '{}'::jsonb);`

	if _, err := tx.Exec(ctx, sq, p.ID, step1.Title, wizdomain.StepNotStarted); err != nil {
		return nil, fmt.Errorf("init first step: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}

// List returns the user's projects, newest first.
func (r *ProjectRepository) List(ctx context.Context, userID string) ([]domain.Project, error) {
	const q = `
select ` + projectCols + `
from projects
where user_id = $1::uuid
order by created_at desc;`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Status,
			&p.CurrentStep, &p.TotalSteps, &p.Metadata, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns one owned project, or ErrNotFound when absent or owned by
// someone else.
func (r *ProjectRepository) Get(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	const q = `
select ` + projectCols + `
from projects
where id = $1::uuid and user_id = $2::uuid;`

	return scanProject(r.db.QueryRow(ctx, q, projectID, userID))
}

// Owner returns display fields for the project's owner.
func (r *ProjectRepository) Owner(ctx context.Context, projectID string) (*domain.Owner, error) {
	const q = `
select coalesce(u.full_name, ''), coalesce(u.email, '')
from projects p
join users u on u.id = p.user_id
where p.id = $1::uuid;`

	var o domain.Owner
	err := r.db.QueryRow(ctx, q, projectID).Scan(&o.FullName, &o.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Update writes title and description. Status and current_step belong to the
// wizard flow and are not writable here.
func (r *ProjectRepository) Update(ctx context.Context, userID, projectID, title string, description *string) (*domain.Project, error) {
	const q = `
update projects
set title = $3, description = $4, updated_at = now()
where id = $1::uuid and user_id = $2::uuid
returning ` + projectCols + `;`

	return scanProject(r.db.QueryRow(ctx, q, projectID, userID, title, description))
}

// Archive marks a project archived. This is the only backward transition.
func (r *ProjectRepository) Archive(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	const q = `
update projects
set status = $3, updated_at = now()
where id = $1::uuid and user_id = $2::uuid
returning ` + projectCols + `;`

	return scanProject(r.db.QueryRow(ctx, q, projectID, userID, domain.StatusArchived))
}

// Delete removes the project; steps, chat history, outputs and file rows go
// with it via FK cascade.
func (r *ProjectRepository) Delete(ctx context.Context, userID, projectID string) error {
	const q = `delete from projects where id = $1::uuid and user_id = $2::uuid;`

	ct, err := r.db.Exec(ctx, q, projectID, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
