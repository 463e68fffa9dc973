// Package scheduler runs the periodic aggregation job: scrape all sources,
// reconcile, refresh lifecycle statuses, regenerate outputs.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

// DefaultCronSpec runs the job daily at 02:00 server time, standard
// five-field cron syntax.
const DefaultCronSpec = "0 2 * * *"

// Config holds scheduler settings.
type Config struct {
	CronSpec string
}

// Scheduler triggers the aggregation job on a cron schedule.
type Scheduler struct {
	c    *cron.Cron
	spec string
}

// New creates a scheduler invoking job on cfg.CronSpec. The job receives a
// context carrying the scheduler's logger.
func New(cfg Config, job func(ctx context.Context)) (*Scheduler, error) {
	spec := cfg.CronSpec
	if spec == "" {
		spec = DefaultCronSpec
	}

	s := &Scheduler{
		c:    cron.New(),
		spec: spec,
	}

	_, err := s.c.AddFunc(spec, func() {
		logger := logging.Default()
		logger.Info().Str("cron", spec).Msg("Scheduler tick: running aggregation job")
		job(logging.WithLogger(context.Background(), logger))
	})
	if err != nil {
		return nil, &errors.ConfigError{Component: "scheduler", Message: "invalid cron spec " + spec, Err: err}
	}

	return s, nil
}

// Start begins scheduling in the background.
func (s *Scheduler) Start() {
	logging.Default().Info().Str("cron", s.spec).Msg("Scheduler started")
	s.c.Start()
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
	logging.Default().Info().Msg("Scheduler stopped")
}
