package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Matias-sh/mi-portafolio/pkg/portal"
	"github.com/robfig/cron/v3"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noop(context.Context) error { return nil }

func TestNewValidatesInput(t *testing.T) {
	if _, err := New("", noop); err == nil {
		t.Fatalf("expected error when expression empty")
	}

	if _, err := New("@daily", nil); err == nil {
		t.Fatalf("expected error when job nil")
	}

	if _, err := New("not a cron", noop); err == nil {
		t.Fatalf("expected error when expression invalid")
	}
}

func TestRunAppliesTimeoutAndPropagatesErrors(t *testing.T) {
	var sawDeadline bool

	s, err := New("@hourly", func(ctx context.Context) error {
		_, sawDeadline = ctx.Deadline()
		return errors.New("boom")
	}, WithJobTimeout(time.Second))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Run(context.Background()); err == nil {
		t.Fatalf("expected error from job")
	}

	if !sawDeadline {
		t.Fatalf("expected job context to carry the timeout")
	}
}

func TestStartSchedulesJob(t *testing.T) {
	var calls atomic.Int32
	called := make(chan struct{}, 1)

	s, err := New(
		"@every 1s",
		func(context.Context) error {
			calls.Add(1)
			select {
			case called <- struct{}{}:
			default:
			}
			return nil
		},
		WithName("test"),
		WithCron(cron.New(cron.WithParser(portal.CronParser))),
		WithLogger(quietLogger()),
	)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("start returned error: %v", err)
	}

	if s.Next().IsZero() {
		t.Fatalf("expected a planned run")
	}

	if err := s.Start(ctx); err == nil {
		t.Fatalf("expected error when starting twice")
	}

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatalf("expected job to run")
	}

	s.Stop()

	if !s.Next().IsZero() {
		t.Fatalf("stopped scheduler has no next run")
	}

	if calls.Load() < 1 {
		t.Fatalf("expected at least one call")
	}
}
