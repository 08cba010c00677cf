package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Matias-sh/mi-portafolio/pkg/portal"
	"github.com/robfig/cron/v3"
)

// Job is the unit of work run on every tick.
type Job func(context.Context) error

// Scheduler runs a single named job on a cron expression.
type Scheduler struct {
	name       string
	expression string
	job        Job
	cron       *cron.Cron
	logger     *slog.Logger
	jobTimeout time.Duration

	mu      sync.Mutex
	started bool
	entryID cron.EntryID
}

type Option func(*Scheduler)

func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.cron = c
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithJobTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		if timeout > 0 {
			s.jobTimeout = timeout
		}
	}
}

func WithName(name string) Option {
	return func(s *Scheduler) {
		if name != "" {
			s.name = name
		}
	}
}

func New(expression string, job Job, opts ...Option) (*Scheduler, error) {
	if expression == "" {
		return nil, errors.New("cron expression cannot be empty")
	}

	if job == nil {
		return nil, errors.New("job cannot be nil")
	}

	if _, err := portal.CronParser.Parse(expression); err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}

	s := &Scheduler{
		name:       "job",
		expression: expression,
		job:        job,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cron == nil {
		s.cron = cron.New(cron.WithParser(portal.CronParser))
	}

	return s, nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("scheduler [%s] already started", s.name)
	}

	entryID, err := s.cron.AddFunc(s.expression, func() {
		if err := s.Run(ctx); err != nil {
			s.logger.Error("scheduled job failed", "job", s.name, "error", err)
		}
	})

	if err != nil {
		return fmt.Errorf("schedule job [%s]: %w", s.name, err)
	}

	s.entryID = entryID
	s.cron.Start()
	s.started = true

	s.logger.Info("scheduler started", "job", s.name, "expression", s.expression)

	if ctx != nil {
		go func() {
			<-ctx.Done()
			s.Stop()
		}()
	}

	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}

	done := s.cron.Stop()
	s.cron.Remove(s.entryID)
	s.started = false
	s.mu.Unlock()

	<-done.Done()
}

// Next returns the next planned run, or the zero time when not started.
func (s *Scheduler) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return time.Time{}
	}

	return s.cron.Entry(s.entryID).Next
}

// Run executes the job right away, applying the configured timeout.
func (s *Scheduler) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	return s.job(ctx)
}
