// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/undicycle/adjacency"

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}

		addVertices(o, cfg, n)
		// Close the ring with (n-1) - 0 on the last step.
		for i := 0; i < n; i++ {
			o.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
