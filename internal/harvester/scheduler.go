package harvester

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"

	"github.com/rmgpulse/rmgpulse/internal/logger"
)

// Scheduler re-runs full harvest passes on a cron schedule. A pass that
// is still running when the next tick fires is never overlapped; the tick
// is skipped instead.
type Scheduler struct {
	harvester *Harvester
	cron      *cron.Cron
	perSource int
	running   atomic.Bool
	log       logger.Interface
}

// NewScheduler creates a scheduler around the harvester.
func NewScheduler(h *Harvester, perSource int, log logger.Interface) *Scheduler {
	return &Scheduler{
		harvester: h,
		cron:      cron.New(),
		perSource: perSource,
		log:       log.WithComponent("harvest_scheduler"),
	}
}

// Start registers the schedule (standard cron or "@every" syntax) and
// starts the cron runner in its own goroutine.
func (s *Scheduler) Start(ctx context.Context, schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.runPass(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid harvest schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.log.Info("harvest schedule registered", "schedule", schedule)
	return nil
}

// Stop stops the cron runner and waits for a running pass to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.log.Info("harvest scheduler stopped")
}

func (s *Scheduler) runPass(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.log.Warn("previous harvest pass still running, skipping tick")
		return
	}
	defer s.running.Store(false)

	results := s.harvester.HarvestAll(ctx, s.perSource)
	total := 0
	for _, count := range results {
		total += count
	}
	s.log.Info("scheduled harvest pass finished", "stored", total)
}
