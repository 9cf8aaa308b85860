package ports

import (
	"context"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
)

// Builder brings targets up to date.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Ensure brings the named targets and their prerequisites up to date,
	// depth-first. Already-satisfied targets are skipped. The first action
	// failure aborts the run.
	Ensure(ctx context.Context, graph *domain.Graph, names []string) error

	// EnsureAll ensures every target declared in the graph.
	EnsureAll(ctx context.Context, graph *domain.Graph) error
}
