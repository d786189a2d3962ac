// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - RandomSparse(n, p) and RandomTree(n) constructors.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - RandomSparse: 0 ≤ p ≤ 1 (else ErrInvalidProbability); the RNG is required
//     only for 0 < p < 1. Erdős–Rényi-like: each unordered pair {i,j}, i<j, is
//     included independently with probability p. No self-loops.
//   - RandomTree: random recursive tree; vertex i ≥ 1 attaches to a uniformly
//     chosen earlier vertex. Requires the RNG whenever n ≥ 3. Always acyclic.
//
// Determinism:
//   - Stable vertex order (i asc) and trial order (i asc, j asc), so outcomes
//     are fixed for a fixed seed.

package builder

import "github.com/katalvlaran/undicycle/adjacency"

const (
	methodRandomSparse = "RandomSparse"
	methodRandomTree   = "RandomTree"
)

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}

		addVertices(o, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if keep(cfg, p) {
					o.AddEdge(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}

// RandomTree returns a Constructor that samples a random recursive tree on n vertices.
func RandomTree(n int) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if err := validateMin(methodRandomTree, "n", n, minRandomNodes); err != nil {
			return err
		}
		if cfg.rng == nil && n > 2 {
			return builderErrorf(methodRandomTree, ErrNeedRandSource, "n=%d", n)
		}

		addVertices(o, cfg, n)
		for i := 1; i < n; i++ {
			parent := 0
			if i > 1 {
				parent = cfg.rng.Intn(i)
			}
			o.AddEdge(cfg.idFn(parent), cfg.idFn(i))
		}

		return nil
	}
}

// keep decides one Bernoulli trial; p ∈ {0,1} is decided without the RNG.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
