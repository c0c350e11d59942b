package uploads

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// File is the stored record for one uploaded object.
type File struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID *string   `json:"project_id,omitempty"`
	Name      string    `json:"name"`
	ObjectKey string    `json:"object_key"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type FileRepository struct {
	db *pgxpool.Pool
}

func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Insert(ctx context.Context, f *File) error {
	const q = `
insert into files (user_id, project_id, name, object_key, url, size_bytes, mime_type)
values ($1::uuid, $2::uuid, $3, $4, $5, $6, $7)
returning id::text, created_at;
`
	return r.db.QueryRow(ctx, q,
		f.UserID, f.ProjectID, f.Name, f.ObjectKey, f.URL, f.Size, f.MimeType,
	).Scan(&f.ID, &f.CreatedAt)
}

func (r *FileRepository) ListByUser(ctx context.Context, userID string) ([]File, error) {
	const q = `
select id::text, user_id::text, project_id::text, name, object_key, url, size_bytes, mime_type, created_at
from files
where user_id = $1::uuid
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []File
	for rows.Next() {
		var f File
		if err := rows.Scan(&f.ID, &f.UserID, &f.ProjectID, &f.Name, &f.ObjectKey, &f.URL, &f.Size, &f.MimeType, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
