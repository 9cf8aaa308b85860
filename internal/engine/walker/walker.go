// Package walker resolves targets depth-first and brings them up to date.
package walker

import (
	"context"
	"os"

	"go.trai.ch/zerr"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
)

var _ ports.Builder = (*Walker)(nil)

// Walker ensures targets depth-first: every prerequisite is fully satisfied
// before its dependent is considered. Satisfaction is rechecked from the
// filesystem on every run; the per-run memo only prevents revisiting a
// target twice within the same invocation.
type Walker struct {
	checker  ports.Checker
	runner   ports.Runner
	expander ports.Expander
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new Walker.
func New(
	checker ports.Checker,
	runner ports.Runner,
	expander ports.Expander,
	tracer ports.Tracer,
	logger ports.Logger,
) *Walker {
	return &Walker{
		checker:  checker,
		runner:   runner,
		expander: expander,
		tracer:   tracer,
		logger:   logger,
	}
}

// Ensure brings the named targets and their transitive prerequisites up to
// date. The graph is validated first so a cyclic or misdeclared graph fails
// before any action runs. The first action failure aborts the walk.
func (w *Walker) Ensure(ctx context.Context, graph *domain.Graph, names []string) error {
	if err := graph.Validate(); err != nil {
		return zerr.Wrap(err, "invalid target graph")
	}

	for _, name := range names {
		if _, ok := graph.Get(domain.NewInternedString(name)); !ok {
			return zerr.With(domain.ErrTargetNotFound, "target", name)
		}
	}
	w.tracer.EmitPlan(ctx, names)

	done := make(map[domain.InternedString]bool)
	for _, name := range names {
		if err := w.ensure(ctx, graph, domain.NewInternedString(name), done); err != nil {
			return err
		}
	}
	return nil
}

// EnsureAll ensures every declared target in execution order.
func (w *Walker) EnsureAll(ctx context.Context, graph *domain.Graph) error {
	if err := graph.Validate(); err != nil {
		return zerr.Wrap(err, "invalid target graph")
	}

	names := make([]string, 0, graph.Len())
	for target := range graph.Walk() {
		names = append(names, target.Name.String())
	}
	w.tracer.EmitPlan(ctx, names)

	done := make(map[domain.InternedString]bool)
	for target := range graph.Walk() {
		if err := w.ensure(ctx, graph, target.Name, done); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) ensure(ctx context.Context, graph *domain.Graph, name domain.InternedString, done map[domain.InternedString]bool) error {
	if done[name] {
		return nil
	}

	// Validate guarantees every referenced name resolves.
	target, _ := graph.Get(name)

	var prereqOutputs []string
	for _, prereq := range target.Prerequisites {
		if err := w.ensure(ctx, graph, prereq, done); err != nil {
			return err
		}
		p, _ := graph.Get(prereq)
		prereqOutputs = append(prereqOutputs, p.OutputPaths()...)
	}

	if target.IsFanOut() {
		if err := w.ensureFanOut(ctx, &target); err != nil {
			return err
		}
		done[name] = true
		return nil
	}

	if err := w.ensureOne(ctx, &target, prereqOutputs); err != nil {
		return err
	}
	done[name] = true
	return nil
}

// ensureOne checks one concrete target and runs its action if unsatisfied.
// After a successful run every declared output must exist; an action that
// reports success without producing its output is a defect, not a condition
// to retry.
func (w *Walker) ensureOne(ctx context.Context, target *domain.Target, prereqOutputs []string) error {
	name := target.Name.String()
	ctx, span := w.tracer.Start(ctx, name)
	defer span.End()

	satisfied, err := w.checker.Satisfied(target, prereqOutputs)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "staleness check failed"), "target", name)
		span.RecordError(err)
		return err
	}
	if satisfied {
		span.Cached()
		return nil
	}

	w.logger.Info("building " + name)
	if err := w.runner.Run(ctx, target); err != nil {
		span.RecordError(err)
		return err
	}

	for _, out := range target.OutputPaths() {
		if _, statErr := os.Stat(out); statErr != nil {
			err := zerr.With(domain.ErrOutputMissing, "target", name)
			err = zerr.With(err, "output", out)
			span.RecordError(err)
			return err
		}
	}
	return nil
}

// ensureFanOut expands a fan-out rule against the filesystem as it is right
// now and ensures each synthetic per-file target. Expansion is deferred to
// this point so it sees whatever the generating prerequisite just produced.
func (w *Walker) ensureFanOut(ctx context.Context, target *domain.Target) error {
	children, err := w.expander.Expand(target)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "fan-out expansion failed"), "target", target.Name.String())
	}

	for i := range children {
		child := &children[i]
		// The compressed source is the synthetic target's only prerequisite.
		if err := w.ensureOne(ctx, child, []string{child.Action.Path}); err != nil {
			return err
		}
	}
	return nil
}
