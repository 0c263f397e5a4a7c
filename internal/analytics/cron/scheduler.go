package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sahanw/portfolio-backend/internal/analytics/service"
)

// Scheduler keeps the analytics snapshot cache warm in the background.
type Scheduler struct {
	svc *service.AnalyticsService
	c   *cron.Cron
}

func NewScheduler(svc *service.AnalyticsService) *Scheduler {
	return &Scheduler{svc: svc}
}

// Start initializes cron tasks.
func (s *Scheduler) Start() {
	s.c = cron.New(cron.WithSeconds())

	// every 5 minutes
	_, err := s.c.AddFunc("0 */5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.svc.Refresh(ctx); err != nil {
			log.Printf("analytics refresh failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (analytics refresh every 5 minutes)")
	s.c.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.c != nil {
		<-s.c.Stop().Done()
	}
}
