package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/di-awab/priseitup/internal/metrics"
	"github.com/di-awab/priseitup/internal/store"
)

// Scheduler runs the periodic retention job that prunes appraisal records
// older than the configured maximum age.
type Scheduler struct {
	cron   *cron.Cron
	store  store.Store
	maxAge time.Duration
	log    *slog.Logger
}

// NewScheduler builds the retention scheduler. interval is the cadence of
// the prune job, maxAge the cutoff relative to job run time.
func NewScheduler(st store.Store, maxAge, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if log == nil {
		log = slog.Default()
	}

	s := &Scheduler{
		cron:   cron.New(),
		store:  st,
		maxAge: maxAge,
		log:    log,
	}

	spec := fmt.Sprintf("@every %s", interval)
	if _, err := s.cron.AddFunc(spec, s.runRetention); err != nil {
		return nil, fmt.Errorf("scheduling retention job: %w", err)
	}

	return s, nil
}

// Start begins running scheduled jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.log.Info("starting retention scheduler", "max_age", s.maxAge)
	s.cron.Start()
}

// Stop halts the scheduler and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("retention scheduler stopped")
}

// Entries returns the scheduled cron entries, mainly for inspection in
// tests.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRetention() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-s.maxAge)
	pruned, err := s.store.DeleteAppraisalsBefore(ctx, cutoff)
	if err != nil {
		s.log.Error("retention prune failed", "error", err)
		return
	}

	if pruned > 0 {
		metrics.RetentionPrunedTotal.Add(float64(pruned))
		s.log.Info("pruned old appraisals", "count", pruned, "cutoff", cutoff)
	}

	if total, err := s.store.CountAppraisals(ctx); err == nil {
		metrics.StoredAppraisals.Set(float64(total))
	}
}
