package activity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecorder(t *testing.T) *Recorder {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRecorder(client)
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()

	t.Run("records and reads back newest first", func(t *testing.T) {
		rec := setupRecorder(t)

		rec.Record(ctx, Event{Type: TypeProjectCreated, UserID: "u1", ProjectID: "p1", ProjectTitle: "First"})
		rec.Record(ctx, Event{Type: TypePRDGenerated, UserID: "u1", ProjectID: "p1"})

		events, err := rec.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, TypePRDGenerated, events[0].Type)
		assert.Equal(t, TypeProjectCreated, events[1].Type)
		assert.Equal(t, "First", events[1].ProjectTitle)
		assert.False(t, events[0].At.IsZero())
	})

	t.Run("caps the feed at fifty entries", func(t *testing.T) {
		rec := setupRecorder(t)

		for i := 0; i < 60; i++ {
			rec.Record(ctx, Event{
				Type:      TypeProjectCreated,
				UserID:    "u1",
				ProjectID: fmt.Sprintf("p%d", i),
				At:        time.Now().UTC(),
			})
		}

		events, err := rec.Recent(ctx, maxRecent)
		require.NoError(t, err)
		assert.Len(t, events, maxRecent)
		assert.Equal(t, "p59", events[0].ProjectID)
	})

	t.Run("nil recorder is a no-op", func(t *testing.T) {
		var rec *Recorder
		rec.Record(ctx, Event{Type: TypeProjectCreated})

		events, err := rec.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("recorder without a client reads an empty feed", func(t *testing.T) {
		rec := NewRecorder(nil)
		rec.Record(ctx, Event{Type: TypeProjectCreated})

		events, err := rec.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
