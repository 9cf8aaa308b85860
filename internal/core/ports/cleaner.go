package ports

import "github.com/Timdpr/atsp-approximation/internal/core/domain"

// Cleaner removes declared outputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=cleaner.go -destination=mocks/mock_cleaner.go -package=mocks
type Cleaner interface {
	// Clean deletes every declared output path (and probe stamp) of every
	// target in the graph, unconditionally and best-effort. Deleting an
	// already-absent path is a no-op.
	Clean(graph *domain.Graph) error
}
