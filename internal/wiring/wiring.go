// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Timdpr/atsp-approximation/internal/adapters/archive"
	_ "github.com/Timdpr/atsp-approximation/internal/adapters/config"
	_ "github.com/Timdpr/atsp-approximation/internal/adapters/fetch"
	_ "github.com/Timdpr/atsp-approximation/internal/adapters/fs"
	_ "github.com/Timdpr/atsp-approximation/internal/adapters/logger"
	_ "github.com/Timdpr/atsp-approximation/internal/adapters/pip"
	_ "github.com/Timdpr/atsp-approximation/internal/adapters/shell"
	_ "github.com/Timdpr/atsp-approximation/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/Timdpr/atsp-approximation/internal/app"
	_ "github.com/Timdpr/atsp-approximation/internal/engine/runner"
	_ "github.com/Timdpr/atsp-approximation/internal/engine/walker"
)
