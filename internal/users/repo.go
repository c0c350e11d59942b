package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Roles known to the platform. New accounts default to client.
const (
	RoleClient     = "client"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type UpsertUser struct {
	FirebaseUID string
	Email       string
	FullName    string
	CompanyName string
	Phone       string
}

// EnsureUser upserts the authenticated user row and returns its database id
// and role. Called on every authenticated request.
func (r *Repo) EnsureUser(ctx context.Context, u UpsertUser) (string, string, error) {
	if u.FirebaseUID == "" {
		return "", "", fmt.Errorf("firebase_uid required")
	}

	const q = `
insert into users (firebase_uid, email, full_name, company_name, phone, updated_at)
values ($1, nullif($2,''), nullif($3,''), nullif($4,''), nullif($5,''), now())
on conflict (firebase_uid) do update
set
  email = coalesce(excluded.email, users.email),
  full_name = coalesce(excluded.full_name, users.full_name),
  company_name = coalesce(excluded.company_name, users.company_name),
  phone = coalesce(excluded.phone, users.phone),
  updated_at = now()
returning id::text, role;
`
	var id, role string
	if err := r.db.QueryRow(ctx, q, u.FirebaseUID, u.Email, u.FullName, u.CompanyName, u.Phone).Scan(&id, &role); err != nil {
		return "", "", err
	}
	return id, role, nil
}

// Role returns the stored role for a user id.
func (r *Repo) Role(ctx context.Context, userID string) (string, error) {
	const q = `select role from users where id = $1::uuid;`

	var role string
	if err := r.db.QueryRow(ctx, q, userID).Scan(&role); err != nil {
		return "", err
	}
	return role, nil
}
