package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
)

// OutputRepository stores generated documents. Rows are append-only; each
// generation request produces a fresh row.
type OutputRepository struct {
	db *pgxpool.Pool
}

func NewOutputRepository(db *pgxpool.Pool) *OutputRepository {
	return &OutputRepository{db: db}
}

func (r *OutputRepository) Insert(ctx context.Context, projectID, outputType, content string, meta domain.Metadata) (*domain.GeneratedOutput, error) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	const q = `
insert into generated_outputs (project_id, output_type, content, metadata)
values ($1::uuid, $2, $3, $4)
returning id::text, project_id::text, created_at;`

	out := domain.GeneratedOutput{
		OutputType: outputType,
		Content:    content,
		Metadata:   meta,
	}
	if err := r.db.QueryRow(ctx, q, projectID, outputType, content, metaJSON).
		Scan(&out.ID, &out.ProjectID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByProject returns a project's outputs, newest first. The project must
// belong to the given user.
func (r *OutputRepository) ListByProject(ctx context.Context, userID, projectID string) ([]domain.GeneratedOutput, error) {
	if _, _, _, err := ownedProject(ctx, r.db, userID, projectID); err != nil {
		return nil, err
	}

	const q = `
select id::text, project_id::text, output_type, content, metadata, created_at
from generated_outputs
where project_id = $1::uuid
order by created_at desc;`

	rows, err := r.db.Query(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GeneratedOutput
	for rows.Next() {
		var o domain.GeneratedOutput
		var metaJSON []byte
		if err := rows.Scan(&o.ID, &o.ProjectID, &o.OutputType, &o.Content, &metaJSON, &o.CreatedAt); err != nil {
			return nil, err
		}
		if len(metaJSON) > 0 {
			if err := json.Unmarshal(metaJSON, &o.Metadata); err != nil {
				return nil, fmt.Errorf("decode metadata: %w", err)
			}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
