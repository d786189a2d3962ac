// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_isolated.go - Isolated(n) and Loop(idx) constructors.
//
// Contract:
//   • Isolated: n ≥ 1; declares vertices 0..n-1 with no edges.
//   • Loop: idx ≥ 0; declares vertex idx (if needed) and stores the
//     self-loop idx - idx once.

package builder

import "github.com/katalvlaran/undicycle/adjacency"

const (
	methodIsolated = "Isolated"
	methodLoop     = "Loop"
)

// Isolated returns a Constructor that adds n vertices and no edges.
func Isolated(n int) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodIsolated, "n", n, minIsolatedNodes); err != nil {
			return err
		}
		addVertices(o, cfg, n)

		return nil
	}
}

// Loop returns a Constructor that adds a self-loop on vertex idx.
func Loop(idx int) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodLoop, "idx", idx, 0); err != nil {
			return err
		}
		id := cfg.idFn(idx)
		o.AddEdge(id, id)

		return nil
	}
}
