package pip

import (
	"context"

	"github.com/Timdpr/atsp-approximation/internal/adapters/shell"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the dependency installer Graft node.
const NodeID graft.ID = "adapter.dep_installer"

func init() {
	graft.Register(graft.Node[ports.DepInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.DepInstaller, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(executor), nil
		},
	})
}
