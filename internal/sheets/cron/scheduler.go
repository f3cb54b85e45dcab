package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the content sync on a cron schedule in-process.
type Scheduler struct {
	spec string
	run  func(context.Context) error
}

func NewScheduler(spec string, run func(context.Context) error) *Scheduler {
	return &Scheduler{spec: spec, run: run}
}

// Start registers the job and starts the cron loop.
func (s *Scheduler) Start() error {
	c := cron.New()

	_, err := c.AddFunc(s.spec, func() {
		log.Println("[cron] content sync started")
		if err := s.run(context.Background()); err != nil {
			log.Printf("[cron] content sync failed: %v", err)
			return
		}
		log.Println("[cron] content sync completed at:", time.Now().Format(time.RFC1123))
	})
	if err != nil {
		return err
	}

	log.Printf("[cron] sync scheduler started (spec %q)", s.spec)
	c.Start()
	return nil
}
