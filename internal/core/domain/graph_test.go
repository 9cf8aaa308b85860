package domain_test

import (
	"testing"

	"go.trai.ch/zerr"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
)

func TestGraph_AddTarget(t *testing.T) {
	g := domain.NewGraph()
	target := domain.Target{Name: domain.NewInternedString("lemon")}

	if err := g.AddTarget(&target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := g.AddTarget(&target); err == nil {
		t.Error("expected error when adding duplicate target, got nil")
	} else {
		zErr, ok := err.(*zerr.Error)
		if !ok {
			t.Errorf("expected *zerr.Error, got %T", err)
		}
		meta := zErr.Metadata()
		if name, ok := meta["target"].(string); !ok || name != "lemon" {
			t.Errorf("expected metadata target=lemon, got %v", meta["target"])
		}
	}
}

func TestGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewGraph()
	targetA := domain.Target{
		Name:          domain.NewInternedString("A"),
		Prerequisites: []domain.InternedString{domain.NewInternedString("B")},
	}
	targetB := domain.Target{
		Name:          domain.NewInternedString("B"),
		Prerequisites: []domain.InternedString{domain.NewInternedString("A")},
	}

	if err := g.AddTarget(&targetA); err != nil {
		t.Fatalf("failed to add target A: %v", err)
	}
	if err := g.AddTarget(&targetB); err != nil {
		t.Fatalf("failed to add target B: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if cycle, ok := meta["cycle"].(string); !ok || cycle == "" {
		t.Errorf("expected metadata cycle to be non-empty string, got %v", meta["cycle"])
	}
}

func TestGraph_Validate_MissingPrerequisite(t *testing.T) {
	g := domain.NewGraph()
	target := domain.Target{
		Name:          domain.NewInternedString("vc-solver"),
		Prerequisites: []domain.InternedString{domain.NewInternedString("lemon")},
	}

	if err := g.AddTarget(&target); err != nil {
		t.Fatalf("failed to add target: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for missing prerequisite, got nil")
	}
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	// A depends on B, B depends on C. Execution order: C, B, A.
	targetA := domain.Target{
		Name:          domain.NewInternedString("A"),
		Prerequisites: []domain.InternedString{domain.NewInternedString("B")},
	}
	targetB := domain.Target{
		Name:          domain.NewInternedString("B"),
		Prerequisites: []domain.InternedString{domain.NewInternedString("C")},
	}
	targetC := domain.Target{
		Name: domain.NewInternedString("C"),
	}

	for _, target := range []domain.Target{targetA, targetB, targetC} {
		if err := g.AddTarget(&target); err != nil {
			t.Fatalf("failed to add target %s: %v", target.Name.String(), err)
		}
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	var order []string
	for target := range g.Walk() {
		order = append(order, target.Name.String())
	}

	expected := []string{"C", "B", "A"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d targets, got %d", len(expected), len(order))
	}
	for i, name := range expected {
		if order[i] != name {
			t.Errorf("position %d: expected %s, got %s", i, name, order[i])
		}
	}
}

func TestGraph_Targets_NoValidateNeeded(t *testing.T) {
	g := domain.NewGraph()
	target := domain.Target{
		Name:          domain.NewInternedString("orphan"),
		Prerequisites: []domain.InternedString{domain.NewInternedString("nowhere")},
	}
	if err := g.AddTarget(&target); err != nil {
		t.Fatalf("failed to add target: %v", err)
	}

	// Targets iterates even over a graph that would fail validation,
	// so cleanup can always reach every declared output.
	count := 0
	for range g.Targets() {
		count++
	}
	if count != 1 {
		t.Errorf("expected 1 target, got %d", count)
	}
}
