// Package dfs detects cycles in undirected adjacency-list graphs and, when one
// exists, extracts a concrete witness cycle.
//
// What:
//
//   - HasCycle: depth-first search with parent exclusion over every
//     component. Returns as soon as a self-loop or a back edge to a visited,
//     non-parent node is seen.
//   - FindCycle: the same traversal, additionally recording each node's
//     discovery parent. On a self-loop at n it returns [n, n]; on a back edge
//     (a, b) it rebuilds the root paths of a and b, finds their lowest common
//     ancestor (LCA), and splices LCA … a, b … LCA into one closed walk.
//   - Cycle: the closed-walk result type, with Validate and Canonical helpers.
//
// Why:
//   - Reject cyclic wiring in undirected networks (spanning-tree checks,
//     redundant-link detection, "is this a forest?" assertions).
//   - Report an actionable witness instead of a bare boolean.
//
// Traversal:
//
//	The search runs on an explicit stack of (node, parent, next-neighbour)
//	frames rather than the goroutine stack, so chains of millions of nodes
//	cannot exhaust stack space. Visit order matches the recursive
//	formulation exactly: roots in key order (see WithRoots), neighbours in
//	list order, and the first detection ends the whole query.
//
// Key Types & Options:
//
//   - Cycle[K]:    closed node sequence, first == last.
//   - Option:      WithLogger, WithStats, WithRoots, WithOnVisit.
//   - Stats:       roots started, nodes visited, edges examined, max stack depth.
//
// Complexity:
//
//   - HasCycle:   Time O(V + E), Memory O(V)
//   - FindCycle:  Time O(V + E), Memory O(V); reconstruction is O(depth).
//   - Canonical:  Time O(L) (Booth's minimal rotation), L = cycle length.
//
// Errors:
//
//	The queries never fail. Dangling neighbours (not keys of the graph) are
//	leaves. Validate reports ErrCycleTooShort, ErrCycleNotClosed,
//	ErrCycleRepeatsNode and ErrCycleNotAdjacent. A back edge whose endpoints
//	share no ancestor is an internal invariant violation and panics; it can
//	only arise from asymmetric adjacency lists.
package dfs
