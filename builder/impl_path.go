// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i - i+1 for i=0..n-2. The result is a tree.

package builder

import "github.com/katalvlaran/undicycle/adjacency"

const methodPath = "Path"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}

		addVertices(o, cfg, n)
		for i := 0; i+1 < n; i++ {
			o.AddEdge(cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}
