package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devnow-platform/onboarding-backend/internal/chat/domain"
	projdomain "github.com/devnow-platform/onboarding-backend/internal/projects/domain"
)

// MessageRepository persists per-step chat history. Saves replace the step's
// history wholesale inside one transaction; concurrent saves from two tabs
// are last-write-wins.
type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) ownedProject(ctx context.Context, q interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, userID, projectID string) error {
	const sql = `select 1 from projects where id = $1::uuid and user_id = $2::uuid;`

	var one int
	err := q.QueryRow(ctx, sql, projectID, userID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return projdomain.ErrNotFound
	}
	return err
}

// ListByStep returns a step's chat history in timestamp order.
func (r *MessageRepository) ListByStep(ctx context.Context, userID, projectID string, stepNumber int) ([]domain.Message, error) {
	if err := r.ownedProject(ctx, r.db, userID, projectID); err != nil {
		return nil, err
	}

	const q = `
select id::text, project_id::text, step_number, role, content, metadata, ts
from chat_messages
where project_id = $1::uuid and step_number = $2
order by ts;`

	rows, err := r.db.Query(ctx, q, projectID, stepNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Message, 0, 32)
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.StepNumber, &m.Role, &m.Content, &m.Metadata, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ReplaceForStep swaps the step's full history: delete then insert, one
// transaction. An empty slice clears the history.
func (r *MessageRepository) ReplaceForStep(ctx context.Context, userID, projectID string, stepNumber int, messages []domain.Message) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.ownedProject(ctx, tx, userID, projectID); err != nil {
		return err
	}

	const del = `delete from chat_messages where project_id = $1::uuid and step_number = $2;`
	if _, err := tx.Exec(ctx, del, projectID, stepNumber); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	const ins = `
insert into chat_messages (project_id, step_number, role, content, metadata, ts)
values ($1::uuid, $2, $3, $4, coalesce($5, '{}'::jsonb), coalesce($6, now()));`

	for _, m := range messages {
		var ts any
		if !m.Timestamp.IsZero() {
			ts = m.Timestamp
		}
		var meta any
		if len(m.Metadata) > 0 {
			meta = []byte(m.Metadata)
		}
		if _, err := tx.Exec(ctx, ins, projectID, stepNumber, m.Role, m.Content, meta, ts); err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
	}

	return tx.Commit(ctx)
}
