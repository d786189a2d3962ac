// SPDX-License-Identifier: MIT

package adjacency

import "errors"

// Sentinel errors for the adjacency package.
var (
	// ErrNotMapping indicates that a decoded document is not a node -> neighbours mapping.
	ErrNotMapping = errors.New("adjacency: document is not a mapping")

	// ErrBadNeighbors indicates that a node's neighbour list is not a sequence of scalars.
	ErrBadNeighbors = errors.New("adjacency: neighbours must be a sequence of scalars")

	// ErrEmptyNode indicates an empty node identifier.
	ErrEmptyNode = errors.New("adjacency: node identifier is empty")

	// ErrUnknownFormat indicates an unsupported encoding format.
	ErrUnknownFormat = errors.New("adjacency: unknown format")

	// ErrAsymmetric indicates that at least one arc u -> v has no mirror v -> u.
	ErrAsymmetric = errors.New("adjacency: adjacency lists are not symmetric")
)

// Graph is an undirected graph stored as adjacency lists.
// A nil Graph is a valid empty graph for every read operation.
type Graph[K comparable] map[K][]K

// Ordered pairs a Graph with the order in which its nodes were declared.
// Order lists every key of Graph exactly once.
type Ordered[K comparable] struct {
	Graph Graph[K]
	Order []K
}

// Arc is one stored direction of an edge: To appears in From's list.
type Arc[K comparable] struct {
	From K
	To   K
}

// Format selects the encoding used by Encode.
type Format string

const (
	// FormatYAML encodes as a YAML block mapping.
	FormatYAML Format = "yaml"
	// FormatJSON encodes as a JSON object.
	FormatJSON Format = "json"
)
