package fs

import (
	"context"

	"github.com/Timdpr/atsp-approximation/internal/adapters/logger"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// CheckerNodeID is the unique identifier for the staleness checker Graft node.
	CheckerNodeID graft.ID = "adapter.fs_checker"
	// ExpanderNodeID is the unique identifier for the fan-out expander Graft node.
	ExpanderNodeID graft.ID = "adapter.fs_expander"
	// CleanerNodeID is the unique identifier for the cleaner Graft node.
	CleanerNodeID graft.ID = "adapter.fs_cleaner"
)

func init() {
	graft.Register(graft.Node[ports.Checker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Checker, error) {
			return NewChecker(), nil
		},
	})

	graft.Register(graft.Node[ports.Expander]{
		ID:        ExpanderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Expander, error) {
			return NewExpander(), nil
		},
	})

	graft.Register(graft.Node[ports.Cleaner]{
		ID:        CleanerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Cleaner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCleaner(log), nil
		},
	})
}
