// Package scheduler drives the daily extraction run at a fixed UTC
// wall-clock time. Retry policy lives here with the caller, never inside
// the pipeline itself.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RunFunc is invoked once per firing with the UTC calendar date the run
// covers.
type RunFunc func(ctx context.Context, day time.Time) error

// Options tune scheduler behaviour.
type Options struct {
	Hour         int
	Minute       int
	StartupDelay time.Duration
}

// Scheduler fires once per UTC day at the configured time.
type Scheduler struct {
	opts   Options
	logger zerolog.Logger
}

// New constructs a Scheduler instance.
func New(opts Options, logger zerolog.Logger) *Scheduler {
	return &Scheduler{opts: opts, logger: logger.With().Str("component", "scheduler").Logger()}
}

// Run blocks, invoking run at each daily firing until ctx is cancelled.
// Run errors are logged and the loop continues; a failed day is simply
// retried the next day.
func (s *Scheduler) Run(ctx context.Context, run RunFunc) error {
	if s.opts.StartupDelay > 0 {
		timer := time.NewTimer(s.opts.StartupDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	for {
		next := s.NextFire(time.Now().UTC())
		s.logger.Debug().Time("next_fire", next).Msg("waiting for next daily run")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		day := time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
		s.logger.Info().Time("day", day).Msg("executing scheduled extraction")

		if err := run(ctx, day); err != nil {
			s.logger.Error().Err(err).Time("day", day).Msg("scheduled extraction failed")
		}
	}
}

// NextFire returns the next wall-clock firing strictly after now.
func (s *Scheduler) NextFire(now time.Time) time.Time {
	now = now.UTC()
	fire := time.Date(now.Year(), now.Month(), now.Day(), s.opts.Hour, s.opts.Minute, 0, 0, time.UTC)
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 1)
	}
	return fire
}
