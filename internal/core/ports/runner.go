package ports

import (
	"context"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
)

// Runner executes a target's action.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run produces the target's declared outputs or fails with an error
	// carrying the action kind, the operation attempted and the underlying
	// cause. No partial cleanup happens on failure; incomplete work is
	// written to temporary paths and only renamed into place on success.
	Run(ctx context.Context, target *domain.Target) error
}
