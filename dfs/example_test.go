package dfs_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/undicycle/adjacency"
	"github.com/katalvlaran/undicycle/builder"
	"github.com/katalvlaran/undicycle/dfs"
)

// ExampleHasCycle checks a tree and a triangle.
//
//	tree:  1 - 2 - 3      triangle:  1 - 2
//	           |                      \ /
//	           4                       3
func ExampleHasCycle() {
	tree := adjacency.Graph[int]{
		1: {2},
		2: {1, 3, 4},
		3: {2},
		4: {2},
	}
	triangle := adjacency.Graph[int]{
		1: {2, 3},
		2: {1, 3},
		3: {1, 2},
	}

	fmt.Println(dfs.HasCycle(tree))
	fmt.Println(dfs.HasCycle(triangle))

	// Output:
	// false
	// true
}

// ExampleFindCycle extracts a witness from a triangle, rooting the search at 1
// so the output is deterministic.
func ExampleFindCycle() {
	g := adjacency.Graph[int]{
		1: {2, 3},
		2: {1, 3},
		3: {1, 2},
	}

	cycle, ok := dfs.FindCycle(g, dfs.WithRoots(1))
	fmt.Println(ok, cycle)
	fmt.Println(cycle.Validate(g))

	// Output:
	// true 1 -> 2 -> 3 -> 1
	// <nil>
}

// ExampleFindCycle_selfLoop shows the two-element witness of a self-loop.
func ExampleFindCycle_selfLoop() {
	g := adjacency.Graph[string]{"x": {"x"}}

	cycle, ok := dfs.FindCycle(g)
	fmt.Println(ok, cycle, cycle.Len())

	// Output:
	// true x -> x 1
}

// ExampleCanonical normalises a witness so that equal cycles print alike.
func ExampleCanonical() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Cycle(5),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cycle, _ := dfs.FindCycle(g.Graph, dfs.WithRoots("D"))
	fmt.Println(dfs.Canonical(cycle, cmp.Compare[string]))

	// Output:
	// A -> B -> C -> D -> E -> A
}
