package progrock

import (
	"github.com/vito/progrock"

	"github.com/Timdpr/atsp-approximation/internal/core/ports"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
// Progrock takes the terminal error in Done, so RecordError stashes it
// until End fires.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

var _ ports.Span = (*Span)(nil)

// Write streams action output into the vertex.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError records a failure to be reported when the span ends.
func (s *Span) RecordError(err error) {
	s.err = err
}

// End marks the vertex as finished, carrying any recorded error.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

// Cached marks the vertex as a cache hit.
func (s *Span) Cached() {
	s.vertex.Cached()
}
