package cli

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/undicycle/dfs"
)

var findOutputs = []string{outputText, outputJSON, outputYAML}

type findVars struct {
	path      string
	output    string
	canonical bool
}

type findOpts struct {
	findVars
	*globalOpts
}

// findResult is the serialised form of a find query.
type findResult struct {
	Found  bool     `json:"found" yaml:"found"`
	Length int      `json:"length" yaml:"length"`
	Cycle  []string `json:"cycle,omitempty" yaml:"cycle,omitempty,flow"`
}

// Validate returns an error if the flag values are invalid.
func (o *findOpts) Validate() error {
	for _, f := range findOutputs {
		if o.output == f {
			return nil
		}
	}

	return &errInvalidOutput{value: o.output, allowed: findOutputs}
}

// Execute prints one witness cycle of the input graph, or reports that there
// is none.
func (o *findOpts) Execute() error {
	g, err := o.readGraph(o.path)
	if err != nil {
		return err
	}

	cycle, found := dfs.FindCycle(g.Graph,
		dfs.WithRoots(g.Order...),
		dfs.WithLogger(o.logger()),
	)
	if found && o.canonical {
		cycle = dfs.Canonical(cycle, cmp.Compare[string])
	}
	o.logger().Debug("find: done", zap.Bool("found", found), zap.Int("length", cycle.Len()))

	res := findResult{Found: found, Length: cycle.Len(), Cycle: cycle}
	switch o.output {
	case outputJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result to JSON: %w", err)
		}
		fmt.Fprintf(o.w, "%s\n", data)
	case outputYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshal result to YAML: %w", err)
		}
		fmt.Fprint(o.w, string(data))
	default:
		fmt.Fprintln(o.w, o.humanOutput(cycle, found))
	}

	return nil
}

func (o *findOpts) humanOutput(cycle dfs.Cycle[string], found bool) string {
	if !found {
		return highlightAcyclic("no cycle")
	}
	parts := make([]string, len(cycle))
	for i, n := range cycle {
		parts[i] = highlightNode(n)
	}

	return strings.Join(parts, highlightCycle(" -> "))
}

func buildFindCmd(g *globalOpts) *cobra.Command {
	vars := findVars{}
	cmd := &cobra.Command{
		Use:   "find [FILE|-]",
		Short: "Prints one cycle of an undirected graph.",
		Example: `
  Prints a witness as "a -> b -> c -> a".
  /code $ cyclecheck find graph.yaml
  Prints a stable, machine-readable witness.
  /code $ cyclecheck find --canonical --output json graph.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				vars.path = args[0]
			}
			opts := &findOpts{findVars: vars, globalOpts: g}
			if err := opts.Validate(); err != nil {
				return err
			}

			return opts.Execute()
		},
	}
	cmd.Flags().StringVarP(&vars.output, outputFlag, outputFlagShort, outputText, findOutputFlagDescription)
	cmd.Flags().BoolVar(&vars.canonical, canonicalFlag, false, canonicalFlagDescription)

	return cmd
}
