package runner

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/Timdpr/atsp-approximation/internal/adapters/archive"
	"github.com/Timdpr/atsp-approximation/internal/adapters/fetch"
	"github.com/Timdpr/atsp-approximation/internal/adapters/logger"
	"github.com/Timdpr/atsp-approximation/internal/adapters/pip"
	"github.com/Timdpr/atsp-approximation/internal/adapters/shell"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
)

// NodeID is the unique identifier for the action runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			archive.NodeID,
			shell.NodeID,
			pip.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Runner, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			installer, err := graft.Dep[ports.DepInstaller](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(fetcher, archiver, executor, installer, log), nil
		},
	})
}
