package commands

import (
	"github.com/notmyrealname/apbuild/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the bundle and installer output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			root, _ := cmd.Flags().GetString("root")
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Root:      root,
				Artifacts: true,
				State:     all,
			})
		},
	}
	cmd.Flags().Bool("all", false, "Also remove the stage cache and scratch directory")
	return cmd
}
