// SPDX-License-Identifier: MIT

package adjacency

import "fmt"

// Asymmetries lists every stored arc u -> v (u != v) whose mirror v -> u is
// missing. A dangling neighbour v (not a key) always counts as missing.
// The result follows the iteration order of g's keys and, per key, the
// neighbour order. Duplicate arcs are reported once.
//
// Complexity: O(V + E·d), d = maximal degree.
func Asymmetries[K comparable](g Graph[K]) []Arc[K] {
	var out []Arc[K]
	seen := make(map[Arc[K]]struct{})
	for u, nbs := range g {
		for _, v := range nbs {
			if u == v {
				continue
			}
			arc := Arc[K]{From: u, To: v}
			if _, dup := seen[arc]; dup {
				continue
			}
			seen[arc] = struct{}{}
			if !g.HasEdge(v, u) {
				out = append(out, arc)
			}
		}
	}

	return out
}

// IsSymmetric reports whether every non-loop arc of g is mirrored.
func IsSymmetric[K comparable](g Graph[K]) bool {
	for u, nbs := range g {
		for _, v := range nbs {
			if u != v && !g.HasEdge(v, u) {
				return false
			}
		}
	}

	return true
}

// RequireSymmetric returns nil when g is symmetric, otherwise an error that
// wraps ErrAsymmetric and names the first offending arc and the total count.
func RequireSymmetric[K comparable](g Graph[K]) error {
	bad := Asymmetries(g)
	if len(bad) == 0 {
		return nil
	}

	return fmt.Errorf("RequireSymmetric: arc %v -> %v has no mirror (%d unmatched): %w",
		bad[0].From, bad[0].To, len(bad), ErrAsymmetric)
}

// Symmetrize returns a copy of g in which every unmatched arc u -> v gets its
// mirror appended to v's list. Dangling neighbours become keys.
// The input graph is not modified.
func Symmetrize[K comparable](g Graph[K]) Graph[K] {
	out := g.Clone()
	for _, arc := range Asymmetries(g) {
		out.AddArc(arc.To, arc.From)
	}

	return out
}

// Symmetrize is the Ordered counterpart of the package-level Symmetrize.
// Dangling neighbours promoted to keys are appended to Order in the order
// their first mirror is created.
func (o *Ordered[K]) Symmetrize() *Ordered[K] {
	out := &Ordered[K]{
		Graph: o.Graph.Clone(),
		Order: append(make([]K, 0, len(o.Order)), o.Order...),
	}
	for _, u := range o.Order {
		for _, v := range o.Graph.Neighbors(u) {
			if u == v || out.Graph.HasEdge(v, u) {
				continue
			}
			out.AddArc(v, u)
		}
	}

	return out
}
