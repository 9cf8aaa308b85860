// Package app implements the application layer for provision.
package app

import (
	"context"
	"errors"

	"go.trai.ch/zerr"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      ports.Builder
	cleaner      ports.Cleaner
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, builder ports.Builder, cleaner ports.Cleaner, tracer ports.Tracer) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		cleaner:      cleaner,
		tracer:       tracer,
	}
}

// Build ensures the named targets are up to date. An empty target list
// means every declared target.
func (a *App) Build(ctx context.Context, manifestPath string, targetNames []string) error {
	graph, err := a.configLoader.Load(manifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	defer func() { _ = a.tracer.Close() }()

	if len(targetNames) == 0 {
		if err := a.builder.EnsureAll(ctx, graph); err != nil {
			return errors.Join(domain.ErrBuildFailed, err)
		}
		return nil
	}

	if err := a.builder.Ensure(ctx, graph, targetNames); err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}
	return nil
}

// Clean removes every declared output. Deletion is best-effort; a missing
// path is not an error.
func (a *App) Clean(manifestPath string) error {
	graph, err := a.configLoader.Load(manifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	return a.cleaner.Clean(graph)
}
