// Package dfs implements the two cycle queries for undirected adjacency-list
// graphs: HasCycle (existence) and FindCycle (witness extraction).
//
// Complexity:
//
//   - Time:   O(V + E) for both; FindCycle adds O(depth) for reconstruction.
//   - Memory: O(V) (visited set, parent map, explicit stack).
package dfs

import (
	"github.com/katalvlaran/undicycle/adjacency"
)

// HasCycle reports whether g contains a cycle: a self-loop, or an edge from a
// node to an already visited node other than its discovery parent.
//
// Every key of g is tried as a root so that disconnected components are all
// examined; roots reached by an earlier component are skipped. The search
// stops at the first detection. Neighbours that are not keys of g are leaves.
// A nil or empty graph has no cycle.
//
// Edges are expected to be stored in both directions. With one-way entries
// an arc into an earlier, already finished tree also counts as a cycle.
func HasCycle[K comparable](g adjacency.Graph[K], opts ...Option) bool {
	w := newWalker(g, false, opts)

	return w.run().kind != eventNone
}

// FindCycle returns one cycle of g as a closed node sequence, or (nil, false)
// when g is acyclic. It runs the same traversal as HasCycle, so the two
// always agree on symmetric input.
//
// A self-loop at n yields [n, n]. A back edge (a, b) yields the tree path from
// the lowest common ancestor of a and b down to a, then the tree path from b
// back up to just below that ancestor, closed by the ancestor itself. The
// sequence is neither the shortest cycle nor canonicalised; see Canonical.
//
// Parallel edges are not supported: a neighbour listed twice by a root node
// yields the walk [u, v, u], which Validate rejects as ErrCycleTooShort.
//
// FindCycle panics if a back edge joins two different traversal trees, which
// can only happen when g is not symmetric (see adjacency.Symmetrize). Dangling
// neighbours count as one-way entries: a dangling reference shared by two
// components, such as {a: [x], b: [x]}, triggers the panic. Symmetrize such
// input first.
func FindCycle[K comparable](g adjacency.Graph[K], opts ...Option) (Cycle[K], bool) {
	w := newWalker(g, true, opts)

	det := w.run()
	switch det.kind {
	case eventSelfLoop:
		return Cycle[K]{det.from, det.from}, true
	case eventBackEdge:
		return reconstruct(det.from, det.to, w.parents), true
	default:
		return nil, false
	}
}
