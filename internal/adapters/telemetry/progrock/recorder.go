// Package progrock provides the Progrock implementation of the tracer adapter.
package progrock

import (
	"context"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/Timdpr/atsp-approximation/internal/core/ports"
)

// planVertexName labels the synthetic vertex that announces the run plan.
const planVertexName = "plan"

// Recorder implements ports.Tracer on top of a progrock tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

var _ ports.Tracer = (*Recorder)(nil)

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex for the named target.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// EmitPlan announces the set of targets scheduled for this run as a
// single completed vertex, so the tape shows the plan up front.
func (r *Recorder) EmitPlan(_ context.Context, targetNames []string) {
	if len(targetNames) == 0 {
		return
	}
	d := digest.FromString(planVertexName + ":" + strings.Join(targetNames, ","))
	v := r.rec.Vertex(d, planVertexName)
	_, _ = v.Stdout().Write([]byte(strings.Join(targetNames, "\n") + "\n"))
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
