package ports

import "github.com/Timdpr/atsp-approximation/internal/core/domain"

// Expander materializes fan-out rules into concrete per-file targets.
//
//go:generate go run go.uber.org/mock/mockgen -source=expander.go -destination=mocks/mock_expander.go -package=mocks
type Expander interface {
	// Expand evaluates a fan-out target against the filesystem as it is right
	// now and returns one synthetic target per discovered file. The result is
	// intentionally not fixed at declaration time.
	Expand(target *domain.Target) ([]domain.Target, error)
}
