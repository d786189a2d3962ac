// SPDX-License-Identifier: MIT

package adjacency

// New returns an empty Graph with room for n nodes.
func New[K comparable](n int) Graph[K] {
	return make(Graph[K], n)
}

// Neighbors returns the neighbour list of k. A node that is not a key yields
// an empty list. The returned slice is owned by the graph.
//
// Complexity: O(1)
func (g Graph[K]) Neighbors(k K) []K {
	return g[k]
}

// HasNode reports whether k is a key of g.
func (g Graph[K]) HasNode(k K) bool {
	_, ok := g[k]

	return ok
}

// HasEdge reports whether v appears in u's neighbour list.
// Only the stored direction u -> v is inspected.
//
// Complexity: O(deg(u))
func (g Graph[K]) HasEdge(u, v K) bool {
	for _, w := range g[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Nodes returns the keys of g in map iteration order.
func (g Graph[K]) Nodes() []K {
	out := make([]K, 0, len(g))
	for k := range g {
		out = append(out, k)
	}

	return out
}

// Len returns the number of keys in g.
func (g Graph[K]) Len() int {
	return len(g)
}

// AddNode inserts k with an empty neighbour list if it is absent.
func (g Graph[K]) AddNode(k K) {
	if _, ok := g[k]; !ok {
		g[k] = nil
	}
}

// AddArc appends v to u's list only, creating u if needed.
// It is the building block for deliberately asymmetric inputs.
func (g Graph[K]) AddArc(u, v K) {
	g[u] = append(g[u], v)
}

// AddEdge records the undirected edge {u,v}: v is appended to u's list and u
// to v's list. A self-loop (u == v) is recorded once.
func (g Graph[K]) AddEdge(u, v K) {
	g.AddArc(u, v)
	if u == v {
		return
	}
	g.AddArc(v, u)
}

// Clone returns a deep copy of g; neighbour slices are not shared.
func (g Graph[K]) Clone() Graph[K] {
	out := make(Graph[K], len(g))
	for k, nbs := range g {
		if nbs == nil {
			out[k] = nil
			continue
		}
		out[k] = append(make([]K, 0, len(nbs)), nbs...)
	}

	return out
}
