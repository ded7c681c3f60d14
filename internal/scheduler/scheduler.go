package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/akarpov91/traffic-analytics/internal/dashboard"
)

// Janitor periodically evicts idle dashboard sessions. No data fetching ever
// runs in the background; pipelines execute only per user action.
type Janitor struct {
	scheduler *gocron.Scheduler
	store     *dashboard.Store
	interval  time.Duration
}

// New creates a new Janitor.
func New(store *dashboard.Store, interval time.Duration) *Janitor {
	s := gocron.NewScheduler(time.UTC)
	return &Janitor{
		scheduler: s,
		store:     store,
		interval:  interval,
	}
}

// Start schedules the periodic sweep and starts the underlying scheduler.
func (j *Janitor) Start() error {
	minutes := int(j.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := j.scheduler.Every(minutes).Minutes().Do(func() {
		if dropped := j.store.Evict(); dropped > 0 {
			log.Printf("janitor: evicted %d idle sessions", dropped)
		}
	})
	if err != nil {
		return err
	}

	j.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future sweeps.
func (j *Janitor) Stop() {
	if j.scheduler != nil {
		j.scheduler.Stop()
	}
}
