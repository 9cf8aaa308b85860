package ports

import "github.com/Timdpr/atsp-approximation/internal/core/domain"

// ConfigLoader loads the target manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at the given path and returns the declared
	// target graph. The graph is not yet validated for cycles.
	Load(path string) (*domain.Graph, error)
}
