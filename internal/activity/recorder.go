package activity

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	recentKey = "onboard:activity:recent" // Capped list of recent platform events
	maxRecent = 50
)

// Event types recorded to the admin activity feed.
const (
	TypeProjectCreated   = "project_created"
	TypeProjectCompleted = "project_completed"
	TypePRDGenerated     = "prd_generated"
)

// Event is one entry in the admin activity feed.
type Event struct {
	Type         string    `json:"type"`
	UserID       string    `json:"user_id"`
	ProjectID    string    `json:"project_id"`
	ProjectTitle string    `json:"project_title,omitempty"`
	At           time.Time `json:"at"`
}

// Recorder keeps a capped list of recent events in Redis.
type Recorder struct {
	client *redis.Client
}

func NewRecorder(client *redis.Client) *Recorder {
	return &Recorder{client: client}
}

// Record pushes an event onto the feed. Best-effort: failures are logged and
// never surface to the request that triggered them.
func (r *Recorder) Record(ctx context.Context, ev Event) {
	if r == nil || r.client == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("activity marshal: %v", err)
		return
	}

	pipe := r.client.Pipeline()
	pipe.LPush(ctx, recentKey, data)
	pipe.LTrim(ctx, recentKey, 0, maxRecent-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("activity record: %v", err)
	}
}

// Recent returns up to n events, newest first. Without a Redis client the
// feed is simply empty.
func (r *Recorder) Recent(ctx context.Context, n int) ([]Event, error) {
	if r == nil || r.client == nil {
		return []Event{}, nil
	}
	if n <= 0 || n > maxRecent {
		n = maxRecent
	}

	raw, err := r.client.LRange(ctx, recentKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]Event, 0, len(raw))
	for _, item := range raw {
		var ev Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}
