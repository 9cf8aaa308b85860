package archive

import (
	"context"

	"github.com/Timdpr/atsp-approximation/internal/adapters/logger"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the archiver Graft node.
const NodeID graft.ID = "adapter.archiver"

func init() {
	graft.Register(graft.Node[ports.Archiver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Archiver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewArchiver(log), nil
		},
	})
}
