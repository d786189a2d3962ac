package dfs

import "fmt"

// reconstruct turns the back edge (a, b) into an explicit cycle using the
// discovery-parent forest:
//
//  1. pathA = root … a and pathB = root … b.
//  2. i = last index of their common prefix; pathA[i] is the LCA.
//  3. cycle = pathA[i:] (LCA … a), then pathB[len-1 … i+1] (b … just below
//     the LCA), then the LCA again to close the walk.
//
// When b is an ancestor of a, the usual shape of a DFS back edge, the middle
// part is empty and the result is b … a b.
//
// Panics when a and b share no root: both endpoints come from one search tree
// whenever the adjacency is symmetric, so this is an invariant violation.
func reconstruct[K comparable](a, b K, parents map[K]link[K]) Cycle[K] {
	// 1. Root-first tree paths of both endpoints.
	pathA := rootPath(a, parents)
	pathB := rootPath(b, parents)

	// 2. Walk the common prefix; its last element is the LCA.
	i := 0
	for i < len(pathA) && i < len(pathB) && pathA[i] == pathB[i] {
		i++
	}
	i-- // last common index
	if i < 0 {
		// Different roots: the endpoints sit in different trees.
		panic(fmt.Sprintf("dfs: back edge %v-%v has no common ancestor", a, b))
	}

	// 3. LCA … a, taken forward from pathA.
	cycle := make(Cycle[K], 0, len(pathA)+len(pathB)-2*i)
	cycle = append(cycle, pathA[i:]...)

	// 4. b … child of LCA, taken backward from pathB; the LCA itself is skipped.
	for j := len(pathB) - 1; j > i; j-- {
		cycle = append(cycle, pathB[j])
	}

	// 5. Close the walk on the LCA.
	return append(cycle, cycle[0])
}

// rootPath returns the tree path root … n by following parent links.
func rootPath[K comparable](n K, parents map[K]link[K]) []K {
	var path []K
	for {
		l, ok := parents[n]
		if !ok {
			panic(fmt.Sprintf("dfs: node %v is missing from the parent map", n))
		}
		path = append(path, n)
		if l.root {
			break
		}
		n = l.parent
	}

	return Reverse(path)
}
