// Package undicycle answers two questions about an undirected graph given as
// an adjacency mapping: does it contain a cycle, and if so, which one.
//
// Layout:
//
//	adjacency/      - Graph and Ordered types, symmetry checks, YAML/JSON codec
//	dfs/            - HasCycle, FindCycle, the Cycle witness type, Canonical
//	builder/        - deterministic fixture graphs (cycle, path, grid, trees, …)
//	internal/cli/   - the cyclecheck subcommands
//	cmd/cyclecheck/ - the cyclecheck binary
//
// Quick start:
//
//	g := adjacency.Graph[int]{1: {2, 3}, 2: {1, 3}, 3: {1, 2}}
//	if c, ok := dfs.FindCycle(g, dfs.WithRoots(1)); ok {
//		fmt.Println(c) // 1 -> 2 -> 3 -> 1
//	}
package undicycle
