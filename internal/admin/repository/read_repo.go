package repository

import (
	"context"
	"database/sql"
	"time"
)

// ReadRepository serves the admin dashboard's aggregate views. It runs on
// database/sql rather than the pgx pool so the queries stay mockable in tests.
type ReadRepository struct {
	db *sql.DB
}

func NewReadRepository(db *sql.DB) *ReadRepository {
	return &ReadRepository{db: db}
}

// Stats are the dashboard headline numbers.
type Stats struct {
	TotalProjects      int `json:"total_projects"`
	DraftProjects      int `json:"draft_projects"`
	InProgressProjects int `json:"in_progress_projects"`
	CompletedProjects  int `json:"completed_projects"`
	ArchivedProjects   int `json:"archived_projects"`
	TotalClients       int `json:"total_clients"`
}

func (r *ReadRepository) Stats(ctx context.Context) (*Stats, error) {
	const q = `
select
  (select count(*) from projects),
  (select count(*) from projects where status = 'draft'),
  (select count(*) from projects where status = 'in_progress'),
  (select count(*) from projects where status = 'completed'),
  (select count(*) from projects where status = 'archived'),
  (select count(*) from users where role = 'client');
`
	var s Stats
	err := r.db.QueryRowContext(ctx, q).Scan(
		&s.TotalProjects,
		&s.DraftProjects,
		&s.InProgressProjects,
		&s.CompletedProjects,
		&s.ArchivedProjects,
		&s.TotalClients,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ProjectRow is one project in the admin list, joined with its owner.
type ProjectRow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	CurrentStep int       `json:"current_step"`
	TotalSteps  int       `json:"total_steps"`
	OwnerName   *string   `json:"owner_name,omitempty"`
	OwnerEmail  *string   `json:"owner_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Projects lists every project on the platform, newest first.
func (r *ReadRepository) Projects(ctx context.Context) ([]ProjectRow, error) {
	const q = `
select p.id::text, p.title, p.status, p.current_step, p.total_steps,
       u.full_name, u.email, p.created_at, p.updated_at
from projects p
join users u on u.id = p.user_id
order by p.created_at desc;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProjectRow
	for rows.Next() {
		var p ProjectRow
		if err := rows.Scan(&p.ID, &p.Title, &p.Status, &p.CurrentStep, &p.TotalSteps,
			&p.OwnerName, &p.OwnerEmail, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
