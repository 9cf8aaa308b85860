package fs

import (
	"os"
	"runtime"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Cleaner = (*Cleaner)(nil)

// removeAll is swapped in tests to exercise removal failures.
var removeAll = os.RemoveAll

// Cleaner removes declared outputs. Deletion is unconditional and
// idempotent: removing an absent path is a no-op, and declarations are
// never touched, so a later build recreates everything from scratch.
type Cleaner struct {
	logger ports.Logger
}

// NewCleaner creates a new Cleaner.
func NewCleaner(logger ports.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean deletes every declared output path and probe stamp in the graph.
// Directory removal is recursive. Deletions run concurrently; actions never
// do, but removal has no ordering constraints. Clean is best-effort: a path
// that cannot be removed is logged and skipped, the remaining paths are
// still deleted and the call reports success.
func (c *Cleaner) Clean(graph *domain.Graph) error {
	var paths []string
	for target := range graph.Targets() {
		paths = append(paths, target.OutputPaths()...)
		if target.Probe != nil {
			paths = append(paths, target.Probe.Path)
		}
	}

	g := &errgroup.Group{}
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		g.Go(func() error {
			if err := removeAll(path); err != nil {
				c.logger.Error(zerr.With(zerr.Wrap(err, "failed to remove output"), "path", path))
				return nil
			}
			c.logger.Info("removed " + path)
			return nil
		})
	}

	return g.Wait()
}
