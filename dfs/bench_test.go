package dfs_test

import (
	"testing"

	"github.com/katalvlaran/undicycle/adjacency"
	"github.com/katalvlaran/undicycle/builder"
	"github.com/katalvlaran/undicycle/dfs"
)

func benchGraph(b *testing.B, c builder.Constructor) adjacency.Graph[string] {
	b.Helper()
	o, err := builder.BuildGraph(nil, c)
	if err != nil {
		b.Fatal(err)
	}

	return o.Graph
}

// BenchmarkHasCycle_Path10000 walks an acyclic chain end to end: every node
// is entered and the stack reaches full depth.
func BenchmarkHasCycle_Path10000(b *testing.B) {
	g := benchGraph(b, builder.Path(10000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.HasCycle(g)
	}
}

// BenchmarkFindCycle_Cycle10000 finds the single cycle of a ring, which needs
// the full depth plus one reconstruction.
func BenchmarkFindCycle_Cycle10000(b *testing.B) {
	g := benchGraph(b, builder.Cycle(10000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindCycle(g)
	}
}

// BenchmarkFindCycle_Grid100x100 exits at the first back edge of a grid.
func BenchmarkFindCycle_Grid100x100(b *testing.B) {
	g := benchGraph(b, builder.Grid(100, 100))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindCycle(g)
	}
}

// BenchmarkHasCycle_Forest measures the many-roots case: 1000 disjoint paths.
func BenchmarkHasCycle_Forest(b *testing.B) {
	cons := make([]builder.Constructor, 0, 1000)
	for i := 0; i < 1000; i++ {
		cons = append(cons, builder.Scoped(builder.HexIDFn(i)+"/", builder.Path(10)))
	}
	o, err := builder.BuildGraph(nil, cons...)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.HasCycle(o.Graph)
	}
}
