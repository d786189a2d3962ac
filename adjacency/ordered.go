// SPDX-License-Identifier: MIT

package adjacency

// NewOrdered returns an empty Ordered graph.
func NewOrdered[K comparable]() *Ordered[K] {
	return &Ordered[K]{Graph: make(Graph[K])}
}

// FromGraph wraps g, taking its declaration order from order. Keys of g that
// order does not mention are appended in map iteration order; entries of order
// that are not keys of g, and repeated entries, are dropped.
func FromGraph[K comparable](g Graph[K], order []K) *Ordered[K] {
	if g == nil {
		g = make(Graph[K])
	}
	seen := make(map[K]struct{}, len(g))
	out := make([]K, 0, len(g))
	for _, k := range order {
		if _, dup := seen[k]; dup || !g.HasNode(k) {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	for k := range g {
		if _, ok := seen[k]; !ok {
			out = append(out, k)
		}
	}

	return &Ordered[K]{Graph: g, Order: out}
}

// AddNode declares k if it is not yet a key.
func (o *Ordered[K]) AddNode(k K) {
	if o.Graph.HasNode(k) {
		return
	}
	o.Graph[k] = nil
	o.Order = append(o.Order, k)
}

// AddEdge declares both endpoints and records the undirected edge {u,v}.
func (o *Ordered[K]) AddEdge(u, v K) {
	o.AddNode(u)
	o.AddNode(v)
	o.Graph.AddEdge(u, v)
}

// AddArc declares both endpoints and records u -> v only.
func (o *Ordered[K]) AddArc(u, v K) {
	o.AddNode(u)
	o.AddNode(v)
	o.Graph.AddArc(u, v)
}

// Len returns the number of declared nodes.
func (o *Ordered[K]) Len() int {
	return len(o.Order)
}
