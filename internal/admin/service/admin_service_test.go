package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devnow-platform/onboarding-backend/internal/activity"
	"github.com/devnow-platform/onboarding-backend/internal/admin/repository"
)

func setupAdminService(t *testing.T) (*AdminService, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	svc := NewAdminService(repository.NewReadRepository(db), nil, activity.NewRecorder(rdb), rdb)
	return svc, mock, mr
}

func statsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"total", "draft", "in_progress", "completed", "archived", "clients",
	}).AddRow(10, 2, 5, 2, 1, 8)
}

func TestAdminService_DashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("computes stats and caches them", func(t *testing.T) {
		svc, mock, mr := setupAdminService(t)
		mock.ExpectQuery(`select`).WillReturnRows(statsRows())

		dash, err := svc.DashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, dash.Stats.TotalProjects)
		assert.Equal(t, 8, dash.Stats.TotalClients)
		assert.NotNil(t, dash.RecentActivity)

		// second call is served from the cache, no new query expected
		dash2, err := svc.DashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, dash.Stats, dash2.Stats)

		require.NoError(t, mock.ExpectationsWereMet())
		assert.True(t, mr.Exists("onboard:admin:stats"))
	})

	t.Run("expired cache falls back to the database", func(t *testing.T) {
		svc, mock, mr := setupAdminService(t)
		mock.ExpectQuery(`select`).WillReturnRows(statsRows())
		mock.ExpectQuery(`select`).WillReturnRows(statsRows())

		_, err := svc.DashboardStats(ctx)
		require.NoError(t, err)

		mr.FastForward(statsCacheTTL * 2)

		_, err = svc.DashboardStats(ctx)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("includes the recent activity feed", func(t *testing.T) {
		svc, mock, _ := setupAdminService(t)
		mock.ExpectQuery(`select`).WillReturnRows(statsRows())

		rec := activity.NewRecorder(svc.rdb)
		rec.Record(ctx, activity.Event{Type: activity.TypeProjectCreated, UserID: "u1", ProjectID: "p1"})

		dash, err := svc.DashboardStats(ctx)
		require.NoError(t, err)
		require.Len(t, dash.RecentActivity, 1)
		assert.Equal(t, activity.TypeProjectCreated, dash.RecentActivity[0].Type)
	})
}

func TestAdminService_WarmStats(t *testing.T) {
	svc, mock, mr := setupAdminService(t)
	mock.ExpectQuery(`select`).WillReturnRows(statsRows())

	stats, err := svc.WarmStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalProjects)
	assert.True(t, mr.Exists("onboard:admin:stats"))

	ttl := mr.TTL("onboard:admin:stats")
	assert.Equal(t, statsCacheTTL, ttl)
}
