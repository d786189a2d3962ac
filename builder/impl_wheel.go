// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Vertex 0 is the hub; vertices 1..n-1 form the rim C_{n-1}.
//   • Emits rim edges first (1-2, …, (n-1)-1), then spokes 0-i.

package builder

import "github.com/katalvlaran/undicycle/adjacency"

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}

		addVertices(o, cfg, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			o.AddEdge(cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim))
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			o.AddEdge(hub, cfg.idFn(i))
		}

		return nil
	}
}
