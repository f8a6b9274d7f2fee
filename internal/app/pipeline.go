package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/result"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
)

// resultOK labels successful commands in metrics.
const resultOK = "ok"

// run executes one command body and records its outcome exactly once.
func run[T any](ctx context.Context, s *ProjectService, op string, attrs []slog.Attr, body func() result.Result[T]) result.Result[T] {
	start := time.Now()
	res := body()
	s.finish(ctx, op, start, attrs, res.Err())
	return res
}

// fetch loads the aggregate. A missing project stays ErrNotFound; any other
// repository failure is classified.
func (s *ProjectService) fetch(ctx context.Context, id string) result.Result[*project.Project] {
	if err := ctx.Err(); err != nil {
		return result.Fail[*project.Project](classify("fetching project", err))
	}
	p, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return result.Fail[*project.Project](classify("fetching project "+id, err))
	}
	return result.Ok(p)
}

// persist upserts p and returns it unchanged on success.
func (s *ProjectService) persist(ctx context.Context, p *project.Project) result.Result[*project.Project] {
	if err := ctx.Err(); err != nil {
		return result.Fail[*project.Project](classify("storing project", err))
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return result.Fail[*project.Project](classify("storing project "+p.ID(), err))
	}
	return result.Ok(p)
}

// dispatch hands events to the dispatcher one at a time, in order. The
// command has already been stored, so caller cancellation no longer applies.
func (s *ProjectService) dispatch(ctx context.Context, events []domain.Event) {
	if len(events) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, e := range events {
		s.dispatcher.Dispatch(ctx, e)
	}
}

// classify maps repository and context errors onto the failure taxonomy.
// Errors already carrying a known kind pass through untouched.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrCancelled, err)
	case errors.Is(err, domain.ErrCancelled),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrPersistence):
		return err
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
	}
}

// finish logs a failed command and records command metrics.
func (s *ProjectService) finish(ctx context.Context, op string, start time.Time, attrs []slog.Attr, err error) {
	outcome := resultOK
	if err != nil {
		outcome = domain.FailureKind(err)

		logAttrs := make([]slog.Attr, 0, len(attrs)+3)
		logAttrs = append(logAttrs, slog.String("operation", op))
		logAttrs = append(logAttrs, attrs...)
		logAttrs = append(logAttrs,
			slog.String("failure", outcome),
			slog.Any("error", err),
		)
		s.logger.LogAttrs(ctx, levelFor(outcome), "command failed", logAttrs...)
	}

	if s.metrics == nil {
		return
	}
	labels := metric.WithAttributes(
		telemetry.AttrCommand.String(op),
		telemetry.AttrResult.String(outcome),
	)
	s.metrics.CommandDuration.Record(ctx, time.Since(start).Seconds(), labels)
	s.metrics.CommandTotal.Add(ctx, 1, labels)
}

// levelFor keeps caller mistakes out of the error stream.
func levelFor(kind string) slog.Level {
	switch kind {
	case domain.KindValidation, domain.KindNotFound, domain.KindConflict, domain.KindCancelled:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
