package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devnow-platform/onboarding-backend/internal/activity"
	"github.com/devnow-platform/onboarding-backend/internal/admin/repository"
	"github.com/devnow-platform/onboarding-backend/internal/chat/domain"
	chatrepo "github.com/devnow-platform/onboarding-backend/internal/chat/repository"
)

const (
	statsCacheKey = "onboard:admin:stats"
	statsCacheTTL = 60 * time.Second
)

// AdminService serves the role-gated dashboard views.
type AdminService struct {
	repo     *repository.ReadRepository
	agents   *chatrepo.AgentRepository
	recorder *activity.Recorder
	rdb      *redis.Client
}

func NewAdminService(repo *repository.ReadRepository, agents *chatrepo.AgentRepository, recorder *activity.Recorder, rdb *redis.Client) *AdminService {
	return &AdminService{repo: repo, agents: agents, recorder: recorder, rdb: rdb}
}

// Dashboard is the stats payload plus the recent activity feed.
type Dashboard struct {
	Stats          *repository.Stats `json:"stats"`
	RecentActivity []activity.Event  `json:"recent_activity"`
}

// DashboardStats returns the headline numbers, cached in Redis for a minute,
// alongside the live activity feed. Cache failures fall through to the
// database.
func (s *AdminService) DashboardStats(ctx context.Context) (*Dashboard, error) {
	stats, err := s.cachedStats(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.recorder.Recent(ctx, 10)
	if err != nil {
		log.Printf("recent activity: %v", err)
		events = nil
	}
	if events == nil {
		events = []activity.Event{}
	}

	return &Dashboard{Stats: stats, RecentActivity: events}, nil
}

func (s *AdminService) cachedStats(ctx context.Context) (*repository.Stats, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats repository.Stats
			if json.Unmarshal([]byte(raw), &stats) == nil {
				return &stats, nil
			}
		}
	}
	return s.WarmStats(ctx)
}

// WarmStats recomputes the stats and refreshes the cache. Also called by the
// nightly job so the first morning dashboard load is warm.
func (s *AdminService) WarmStats(ctx context.Context) (*repository.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				log.Printf("stats cache set: %v", err)
			}
		}
	}
	return stats, nil
}

// Projects lists every project with owner details for the admin table.
func (s *AdminService) Projects(ctx context.Context) ([]repository.ProjectRow, error) {
	return s.repo.Projects(ctx)
}

// Agents lists the step persona configurations.
func (s *AdminService) Agents(ctx context.Context) ([]domain.Agent, error) {
	return s.agents.List(ctx)
}

// UpdateAgent patches the persona configured for a step.
func (s *AdminService) UpdateAgent(ctx context.Context, stepNumber int, upd chatrepo.AgentUpdate) (*domain.Agent, error) {
	return s.agents.UpdateByStep(ctx, stepNumber, upd)
}
