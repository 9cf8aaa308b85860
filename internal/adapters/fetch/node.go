package fetch

import (
	"context"

	"github.com/Timdpr/atsp-approximation/internal/adapters/logger"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(log), nil
		},
	})
}
