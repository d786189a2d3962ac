// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has index r*cols+c; vertices are added row-major.
//   • 4-neighbourhood: for each cell, the right then the down neighbour.
//   • A grid with a single row or column is a path; otherwise every 2×2
//     block is a 4-cycle.

package builder

import "github.com/katalvlaran/undicycle/adjacency"

const methodGrid = "Grid"

// Grid returns a Constructor that builds an rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}

		addVertices(o, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.idFn(r*cols + c)
				if c+1 < cols {
					o.AddEdge(u, cfg.idFn(r*cols+c+1))
				}
				if r+1 < rows {
					o.AddEdge(u, cfg.idFn((r+1)*cols+c))
				}
			}
		}

		return nil
	}
}
