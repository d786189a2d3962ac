// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates the graph, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel-wrapped errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undicycle/adjacency"
)

// Constructor applies a deterministic mutation to an ordered adjacency graph
// using the resolved builderConfig. Constructors MUST:
//   - Validate parameters before touching the graph.
//   - Add vertices via cfg.idFn in ascending index order.
//   - Store every edge in both directions (self-loops once).
type Constructor func(o *adjacency.Ordered[string], cfg builderConfig) error

// BuildGraph creates an empty ordered graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Constructors share one ID space: two constructors emitting the same ID
// touch the same vertex. Use Scoped to keep components apart.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*adjacency.Ordered[string], error) {
	o := adjacency.NewOrdered[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(o, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return o, nil
}

// Scoped runs c with vertex IDs prefixed by prefix, so the same topology can
// be added several times as disjoint components:
//
//	BuildGraph(nil, Scoped("a", Path(3)), Scoped("b", Cycle(4)))
func Scoped(prefix string, c Constructor) Constructor {
	return func(o *adjacency.Ordered[string], cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Scoped(%q): nil constructor: %w", prefix, ErrConstructFailed)
		}
		inner := cfg.idFn
		cfg.idFn = func(idx int) string { return prefix + inner(idx) }

		return c(o, cfg)
	}
}

// addVertices declares vertices 0..n-1 in ascending order.
func addVertices(o *adjacency.Ordered[string], cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		o.AddNode(cfg.idFn(i))
	}
}
