// Package commands implements the CLI commands for the provision tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Timdpr/atsp-approximation/internal/app"
)

// CLI represents the command line interface for provision.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "provision",
		Short:         "Fetch and build the solver pipeline's external dependencies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "provision.yaml", "Path to the target manifest")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// A bare invocation builds everything.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.app.Build(cmd.Context(), configPath(cmd), nil)
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
