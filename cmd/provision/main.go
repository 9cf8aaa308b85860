// Package main is the entry point for the provision CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/Timdpr/atsp-approximation/cmd/provision/commands"
	"github.com/Timdpr/atsp-approximation/internal/app"
	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	_ "github.com/Timdpr/atsp-approximation/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrBuildFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
