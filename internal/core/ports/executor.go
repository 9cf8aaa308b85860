package ports

import "context"

// Executor defines the interface for running external build tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv[0] with argv[1:] as arguments in the given working
	// directory. Stdout and stderr are streamed to the logger. It returns an
	// error carrying the exit code if the process fails.
	Execute(ctx context.Context, argv []string, dir string) error
}
