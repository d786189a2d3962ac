// SPDX-License-Identifier: MIT

// Package adjacency defines the in-memory input of the cycle queries: an
// undirected graph stored as a mapping from node identifier to an ordered
// list of neighbour identifiers.
//
// What:
//
//   - Graph[K]: map[K][]K. Neighbour order is significant; it fixes the
//     order in which a depth-first search explores edges.
//   - Ordered[K]: a Graph paired with the order its nodes were declared in,
//     used to make root selection deterministic.
//   - Symmetry helpers: Asymmetries, IsSymmetric, Symmetrize.
//   - Codec: Decode reads YAML or JSON documents (JSON is a YAML subset)
//     into an Ordered[string] preserving key order; Encode writes YAML or JSON.
//
// Conventions:
//
//   - An undirected edge {u,v} is stored twice: v in u's list and u in v's list.
//   - A self-loop is stored once: u appears in its own list.
//   - A neighbour that is not a key (dangling reference) is a leaf with no
//     outgoing edges; lookups on it return an empty list, never an error.
//     It is also a one-way entry: Asymmetries reports it, and a dangling
//     node listed by two components makes dfs.FindCycle panic. Call
//     Symmetrize first to promote such references to keys.
//
// Complexity:
//
//   - Neighbors, HasNode:   O(1)
//   - HasEdge:              O(deg(u))
//   - Asymmetries:          O(V + E·d) where d is the maximal degree
//   - Decode / Encode:      O(V + E)
//
// Errors:
//
//   - ErrNotMapping     document root is not a mapping
//   - ErrBadNeighbors   a node's value is not a sequence of scalars
//   - ErrEmptyNode      an empty node identifier was supplied
//   - ErrUnknownFormat  unsupported encoding format
//   - ErrAsymmetric     adjacency is not mirrored (returned by RequireSymmetric)
package adjacency
