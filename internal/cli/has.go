package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/undicycle/dfs"
)

type hasVars struct {
	path     string
	exitCode bool
}

type hasOpts struct {
	hasVars
	*globalOpts
}

// Execute prints "cycle" or "acyclic" for the input graph.
func (o *hasOpts) Execute() error {
	g, err := o.readGraph(o.path)
	if err != nil {
		return err
	}

	var st dfs.Stats
	found := dfs.HasCycle(g.Graph,
		dfs.WithRoots(g.Order...),
		dfs.WithLogger(o.logger()),
		dfs.WithStats(&st),
	)
	o.logger().Debug("has: done",
		zap.Bool("cycle", found),
		zap.Int("roots", st.Roots),
		zap.Int("visited", st.Visited),
		zap.Int("edges", st.EdgesExamined),
	)

	if !found {
		fmt.Fprintln(o.w, highlightAcyclic("acyclic"))
		return nil
	}
	fmt.Fprintln(o.w, highlightCycle("cycle"))
	if o.exitCode {
		return &errCycleFound{}
	}

	return nil
}

func buildHasCmd(g *globalOpts) *cobra.Command {
	vars := hasVars{}
	cmd := &cobra.Command{
		Use:   "has [FILE|-]",
		Short: "Reports whether an undirected graph contains a cycle.",
		Example: `
  Checks a graph stored in a YAML file.
  /code $ cyclecheck has graph.yaml
  Fails a pipeline step when the input has a cycle.
  /code $ cat graph.json | cyclecheck has --exit-code -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				vars.path = args[0]
			}
			opts := &hasOpts{hasVars: vars, globalOpts: g}

			return opts.Execute()
		},
	}
	cmd.Flags().BoolVar(&vars.exitCode, exitCodeFlag, false, exitCodeFlagDescription)

	return cmd
}
