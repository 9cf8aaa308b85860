package progrock

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/mattn/go-isatty"

	"github.com/Timdpr/atsp-approximation/internal/adapters/telemetry"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the tracer adapter node.
	NodeID graft.ID = "adapter.tracer"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			// The tape renders interactively, so only attach it to a terminal.
			if isatty.IsTerminal(os.Stderr.Fd()) {
				return New(), nil
			}
			return telemetry.NewNoOp(), nil
		},
	})
}
