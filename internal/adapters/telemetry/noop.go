// Package telemetry provides tracer implementations for per-target progress.
package telemetry

import (
	"context"

	"github.com/Timdpr/atsp-approximation/internal/core/ports"
)

// NoOpTracer discards all progress events. Used when no interactive
// rendering is wanted, for example in tests or non-TTY environments.
type NoOpTracer struct{}

var _ ports.Tracer = (*NoOpTracer)(nil)

// NewNoOp creates a tracer that records nothing.
func NewNoOp() *NoOpTracer {
	return &NoOpTracer{}
}

func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

func (t *NoOpTracer) EmitPlan(context.Context, []string) {}

func (t *NoOpTracer) Close() error { return nil }

// NoOpSpan is the span counterpart of NoOpTracer.
type NoOpSpan struct{}

var _ ports.Span = (*NoOpSpan)(nil)

func (s *NoOpSpan) Write(p []byte) (int, error) { return len(p), nil }
func (s *NoOpSpan) End()                        {}
func (s *NoOpSpan) RecordError(error)           {}
func (s *NoOpSpan) Cached()                     {}
