package commands

import (
	"github.com/notmyrealname/apbuild/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [stages...]",
		Short: "Run the packaging pipeline (all stages when none are named)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			root, _ := cmd.Flags().GetString("root")
			return c.app.Run(cmd.Context(), args, app.RunOptions{
				Root:  root,
				Force: force,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild every stage, bypassing the cache")
	return cmd
}
