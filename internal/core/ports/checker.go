package ports

import "github.com/Timdpr/atsp-approximation/internal/core/domain"

// Checker decides whether a target is already satisfied. Satisfaction is
// rederived from the filesystem on every call; there is no hidden cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type Checker interface {
	// Satisfied reports whether every declared output of the target exists
	// and is at least as new as every prerequisite output. Targets without
	// outputs are satisfied only through their probe.
	Satisfied(target *domain.Target, prereqOutputs []string) (bool, error)
}
