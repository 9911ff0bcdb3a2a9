package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/alexanderramin/later/internal/domain"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to w as slog text
// records. A nil writer yields a no-op observer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	// Sorted so records read the same on every run.
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		attrs = append(attrs, k, event.Fields[k])
	}

	switch {
	case event.Err == nil:
		o.logger.InfoContext(ctx, "service_use_case", attrs...)
	case isUserOutcome(event.Err):
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "service_use_case", attrs...)
	default:
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
	}
}

// isUserOutcome reports errors caused by user input rather than by storage.
func isUserOutcome(err error) bool {
	for _, target := range []error{
		domain.ErrCancelled,
		domain.ErrIndexTooBig,
		domain.ErrSubIndexLeaf,
		domain.ErrEmptyPath,
		domain.ErrListNotFound,
		domain.ErrDuplicateList,
		domain.ErrDefaultList,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
