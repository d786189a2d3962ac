package dfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/undicycle/adjacency"
)

// Cycle is a closed walk [v0, v1, …, vk, v0]: consecutive nodes are adjacent
// and v0 … vk are pairwise distinct. A self-loop is [n, n].
type Cycle[K comparable] []K

// Len returns the number of edges in the cycle.
func (c Cycle[K]) Len() int {
	if len(c) < 2 {
		return 0
	}

	return len(c) - 1
}

// Nodes returns the open form of c, without the closing repeat.
func (c Cycle[K]) Nodes() []K {
	if len(c) == 0 {
		return nil
	}

	return append([]K(nil), c[:len(c)-1]...)
}

// String renders c as "a -> b -> c -> a".
func (c Cycle[K]) String() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = fmt.Sprint(n)
	}

	return strings.Join(parts, " -> ")
}

// Validate checks that c is a cycle of g: closed, with distinct interior
// nodes, and with an edge (stored in either direction) between every pair
// of consecutive nodes. It returns the first violated property.
func (c Cycle[K]) Validate(g adjacency.Graph[K]) error {
	if len(c) < 2 || len(c) == 3 {
		return fmt.Errorf("Validate: %d elements: %w", len(c), ErrCycleTooShort)
	}
	last := len(c) - 1
	if c[0] != c[last] {
		return fmt.Errorf("Validate: starts at %v, ends at %v: %w", c[0], c[last], ErrCycleNotClosed)
	}

	seen := make(map[K]struct{}, last)
	for _, n := range c[:last] {
		if _, dup := seen[n]; dup {
			return fmt.Errorf("Validate: node %v: %w", n, ErrCycleRepeatsNode)
		}
		seen[n] = struct{}{}
	}

	for i := 0; i < last; i++ {
		u, v := c[i], c[i+1]
		if !g.HasEdge(u, v) && !g.HasEdge(v, u) {
			return fmt.Errorf("Validate: %v -> %v: %w", u, v, ErrCycleNotAdjacent)
		}
	}

	return nil
}

// Canonical returns the representation of c that is lexicographically
// smallest under cmp among all rotations of both directions, closed again.
// Equal cycles found from different roots canonicalise identically, which
// makes output stable. c itself is not modified; sequences that are not
// closed are returned as a copy.
func Canonical[K comparable](c Cycle[K], cmp func(a, b K) int) Cycle[K] {
	if len(c) < 2 || c[0] != c[len(c)-1] {
		return append(Cycle[K](nil), c...)
	}

	base := c.Nodes()
	rotF := MinimalRotation(base, cmp)
	rotB := MinimalRotation(Reverse(base), cmp)

	pick := rotF
	if Compare(rotB, rotF, cmp) < 0 {
		pick = rotB
	}

	return append(Cycle[K](pick), pick[0])
}
