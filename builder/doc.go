// SPDX-License-Identifier: MIT

// Package builder provides deterministic, "functional-options"-style
// constructors for adjacency-list fixture graphs: rings, paths, trees,
// complete graphs, grids and seeded random graphs. They feed tests,
// benchmarks and the cyclecheck generator.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(bopts, cons...): resolves options once and applies
//     constructors in order onto a fresh adjacency.Ordered[string].
//   - Topologies (Constructor factories):
//     – Cycle(n), Path(n), Star(n), Wheel(n), Complete(n), Grid(r, c)
//     – Isolated(n), Loop(idx)
//     – RandomTree(n), RandomSparse(n, p)      (require WithSeed / WithRand)
//     – Scoped(prefix, c): run c with prefixed IDs to build disjoint components.
//     – ByName(shape, Params): resolve a constructor from its CLI name.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A"…"Z").
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graph,
//     identical neighbour order, identical node declaration order.
//   - Every constructor stores edges in both directions (undirected graphs);
//     a self-loop is stored once.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel-wrapped errors; they never panic.
//
// Acyclic by construction: Path, Star, Isolated, RandomTree, Grid with a
// single row or column, Complete(n ≤ 2). Everything else contains a cycle.
package builder
