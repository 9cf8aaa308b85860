package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [targets...]",
		Short: "Ensure targets exist and are up to date",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), configPath(cmd), args)
		},
	}
}
