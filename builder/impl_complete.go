// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every unordered pair {i,j}, i<j, in (i asc, j asc) order.
//
// Complexity:
//   • Time: O(n²) edges.

package builder

import "github.com/katalvlaran/undicycle/adjacency"

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}

		addVertices(o, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				o.AddEdge(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}
