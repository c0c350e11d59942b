package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/devnow-platform/onboarding-backend/internal/admin/service"
)

type Scheduler struct {
	admin *service.AdminService
	cron  *cron.Cron
}

func NewScheduler(admin *service.AdminService) *Scheduler {
	return &Scheduler{admin: admin}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.warmDashboardStats()
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (warming dashboard stats nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) warmDashboardStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.admin.WarmStats(ctx); err != nil {
		log.Printf("Nightly stats warm failed: %v", err)
		return
	}
	log.Println("Nightly stats warm completed at:", time.Now().Format(time.RFC1123))
}
