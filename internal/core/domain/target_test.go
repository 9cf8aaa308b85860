package domain_test

import (
	"testing"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
)

func TestTarget_OutputPaths(t *testing.T) {
	target := domain.Target{
		Name: domain.NewInternedString("lemon"),
		Outputs: []domain.InternedString{
			domain.NewInternedString("deps/lemon"),
			domain.NewInternedString("deps/lemon-build"),
		},
	}

	outs := target.OutputPaths()
	if len(outs) != 2 {
		t.Fatalf("expected 2 output paths, got %d", len(outs))
	}
	if outs[0] != "deps/lemon" || outs[1] != "deps/lemon-build" {
		t.Errorf("unexpected output paths: %v", outs)
	}
}

func TestTarget_IsFanOut(t *testing.T) {
	fanOut := domain.Target{Action: domain.Action{Kind: domain.ActionDecompressDir}}
	if !fanOut.IsFanOut() {
		t.Error("expected decompress-dir target to be a fan-out rule")
	}

	plain := domain.Target{Action: domain.Action{Kind: domain.ActionDecompress}}
	if plain.IsFanOut() {
		t.Error("expected decompress target not to be a fan-out rule")
	}
}
