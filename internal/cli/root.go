package cli

import (
	"github.com/spf13/cobra"
)

// BuildRootCmd builds the cyclecheck root command with its subcommands,
// reading from the OS filesystem and standard streams.
func BuildRootCmd() *cobra.Command {
	return buildRootCmd(newGlobalOpts())
}

func buildRootCmd(g *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cyclecheck",
		Short: "Detects cycles in undirected graphs given as adjacency lists.",
		Long: `Detects cycles in undirected graphs given as adjacency lists.

Input is a YAML or JSON mapping from node to neighbour list:

  1: [2, 3]
  2: [1, 3]
  3: [1, 2]

Every edge must be listed under both endpoints; see --symmetrize.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.log != nil {
				_ = g.log.Sync()
			}
		},
	}
	cmd.SetOut(g.w)
	cmd.SetErr(g.errW)
	cmd.SetIn(g.stdin)

	cmd.PersistentFlags().BoolVarP(&g.verbose, verboseFlag, verboseFlagShort, false, verboseFlagDescription)
	cmd.PersistentFlags().BoolVar(&g.symmetrize, symmetrizeFlag, false, symmetrizeFlagDescription)

	cmd.AddCommand(buildHasCmd(g))
	cmd.AddCommand(buildFindCmd(g))
	cmd.AddCommand(buildGenCmd(g))

	return cmd
}
