package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReadRepo(t *testing.T) (*ReadRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewReadRepository(db), mock, db
}

func TestReadRepository_Stats(t *testing.T) {
	repo, mock, db := setupReadRepo(t)
	defer db.Close()

	t.Run("scans the headline counts", func(t *testing.T) {
		mock.ExpectQuery(`select`).
			WillReturnRows(sqlmock.NewRows([]string{
				"total", "draft", "in_progress", "completed", "archived", "clients",
			}).AddRow(42, 5, 20, 12, 5, 31))

		stats, err := repo.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, stats.TotalProjects)
		assert.Equal(t, 5, stats.DraftProjects)
		assert.Equal(t, 20, stats.InProgressProjects)
		assert.Equal(t, 12, stats.CompletedProjects)
		assert.Equal(t, 5, stats.ArchivedProjects)
		assert.Equal(t, 31, stats.TotalClients)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates query errors", func(t *testing.T) {
		mock.ExpectQuery(`select`).WillReturnError(sql.ErrConnDone)

		_, err := repo.Stats(context.Background())
		assert.Error(t, err)
	})
}

func TestReadRepository_Projects(t *testing.T) {
	repo, mock, db := setupReadRepo(t)
	defer db.Close()

	t.Run("lists projects with owner details", func(t *testing.T) {
		now := time.Now()
		name := "Jordan Lee"
		email := "jordan@client.test"

		mock.ExpectQuery(`from projects p`).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "title", "status", "current_step", "total_steps",
				"full_name", "email", "created_at", "updated_at",
			}).
				AddRow("11111111-1111-1111-1111-111111111111", "Acme Website", "in_progress", 4, 10, name, email, now, now).
				AddRow("22222222-2222-2222-2222-222222222222", "Beta Launch", "completed", 10, 10, nil, nil, now, now))

		rows, err := repo.Projects(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "Acme Website", rows[0].Title)
		assert.Equal(t, 4, rows[0].CurrentStep)
		require.NotNil(t, rows[0].OwnerName)
		assert.Equal(t, name, *rows[0].OwnerName)
		require.NotNil(t, rows[0].OwnerEmail)
		assert.Equal(t, email, *rows[0].OwnerEmail)

		assert.Nil(t, rows[1].OwnerName)
		assert.Nil(t, rows[1].OwnerEmail)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
