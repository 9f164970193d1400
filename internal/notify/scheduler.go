package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule fires once daily at 13:00 in the configured location.
const DefaultSchedule = "0 13 * * *"

// Runner is what the scheduler triggers; satisfied by *Dispatcher.
type Runner interface {
	Run(ctx context.Context) error
}

// Scheduler fires the dispatcher on a cron schedule. A firing that
// overlaps a still-running dispatch is skipped, never queued.
type Scheduler struct {
	runner  Runner
	cron    *cron.Cron
	spec    string
	running sync.Mutex
}

func NewScheduler(runner Runner, spec string, loc *time.Location) *Scheduler {
	if spec == "" {
		spec = DefaultSchedule
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		runner: runner,
		cron:   cron.New(cron.WithLocation(loc)),
		spec:   spec,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.runOnce(ctx) }); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("notify: reminder scheduler started spec=%q", s.spec)
	return nil
}

// Stop halts the cron loop and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if !s.running.TryLock() {
		log.Printf("notify: previous reminder run still in progress, skipping this firing")
		return
	}
	defer s.running.Unlock()

	if err := s.runner.Run(ctx); err != nil {
		log.Printf("notify: reminder run failed err=%v", err)
	}
}
