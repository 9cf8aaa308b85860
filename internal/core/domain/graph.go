// Package domain contains the core domain models for the target dependency graph.
package domain

import (
	"iter"
	"sort"

	"go.trai.ch/zerr"
)

// Graph represents the dependency graph of targets.
type Graph struct {
	targets        map[InternedString]Target
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets: make(map[InternedString]Target),
	}
}

// AddTarget adds a target to the graph.
// It returns an error if a target with the same name already exists.
func (g *Graph) AddTarget(t *Target) error {
	if _, exists := g.targets[t.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", t.Name.String())
	}
	g.targets[t.Name] = *t
	return nil
}

// Get returns the target with the given name.
func (g *Graph) Get(name InternedString) (Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// Len returns the number of declared targets.
func (g *Graph) Len() int {
	return len(g.targets)
}

// Validate checks for undeclared prerequisites and cycles using a depth-first
// topological sort. It populates the execution order on success. Validation
// runs before any action so that a misdeclared graph never executes anything.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.targets))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		target, exists := g.targets[u]
		if !exists {
			return zerr.With(ErrMissingPrerequisite, "prerequisite", u.String())
		}

		for _, dep := range target.Prerequisites {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	// Sorted roots keep the execution order deterministic across runs.
	names := make([]string, 0, len(g.targets))
	for name := range g.targets {
		names = append(names, name.String())
	}
	sort.Strings(names)

	for _, name := range names {
		n := NewInternedString(name)
		if visited[n] == 0 {
			if err := visit(n); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Targets returns an iterator over all declared targets in no particular
// order. Unlike Walk it does not require a prior Validate call.
func (g *Graph) Targets() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, t := range g.targets {
			if !yield(t) {
				return
			}
		}
	}
}

// Walk returns an iterator that yields targets in execution order
// (prerequisites before dependents). It assumes Validate() has been called
// and returned nil.
func (g *Graph) Walk() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}
