package walker

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/Timdpr/atsp-approximation/internal/adapters/fs"
	"github.com/Timdpr/atsp-approximation/internal/adapters/logger"
	"github.com/Timdpr/atsp-approximation/internal/adapters/telemetry/progrock"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"github.com/Timdpr/atsp-approximation/internal/engine/runner"
)

// NodeID is the unique identifier for the graph walker Graft node.
const NodeID graft.ID = "engine.walker"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.CheckerNodeID,
			runner.NodeID,
			fs.ExpanderNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Builder, error) {
			checker, err := graft.Dep[ports.Checker](ctx)
			if err != nil {
				return nil, err
			}
			run, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			expander, err := graft.Dep[ports.Expander](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(checker, run, expander, tracer, log), nil
		},
	})
}
