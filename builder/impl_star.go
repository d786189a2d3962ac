// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 0 is the center; vertices 1..n-1 are leaves.
//   • Emits spokes 0 - i for i=1..n-1. The result is a tree.

package builder

import "github.com/katalvlaran/undicycle/adjacency"

const methodStar = "Star"

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}

		addVertices(o, cfg, n)
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			o.AddEdge(center, cfg.idFn(i))
		}

		return nil
	}
}
