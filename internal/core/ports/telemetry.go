package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer records per-target progress.
type Tracer interface {
	// Start creates a new span for a target.
	Start(ctx context.Context, name string) (context.Context, Span)
	// EmitPlan signals the set of targets planned for this run.
	EmitPlan(ctx context.Context, targetNames []string)
	// Close flushes the recording session.
	Close() error
}

// Span represents one target's progress.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records a failure for the span.
	RecordError(err error)
	// Cached marks the span's target as already satisfied.
	Cached()
}
