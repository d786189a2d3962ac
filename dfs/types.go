// Package dfs defines options, diagnostics and sentinel errors for the cycle
// queries.
package dfs

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrCycleTooShort indicates a sequence that cannot close a cycle: fewer than
	// two elements, or a two-node walk u -> v -> u that reuses its only edge.
	ErrCycleTooShort = errors.New("dfs: cycle too short")

	// ErrCycleNotClosed indicates that the first and last elements differ.
	ErrCycleNotClosed = errors.New("dfs: cycle is not closed")

	// ErrCycleRepeatsNode indicates that an interior node occurs twice.
	ErrCycleRepeatsNode = errors.New("dfs: cycle repeats a node")

	// ErrCycleNotAdjacent indicates two consecutive nodes without an edge between them.
	ErrCycleNotAdjacent = errors.New("dfs: consecutive cycle nodes are not adjacent")
)

// Option configures a HasCycle or FindCycle call.
type Option func(*Options)

// Options holds the resolved configuration of one query.
type Options struct {
	// Logger receives debug-level traversal events. Defaults to a no-op logger.
	Logger *zap.Logger

	// Stats, if non-nil, is reset and filled by the query.
	Stats *Stats

	// roots holds a []K root order and onVisit a func(K) hook. They are typed
	// per call, so they are kept opaque and asserted by the walker.
	roots   any
	onVisit any
}

// Stats reports what a query did before it returned.
type Stats struct {
	// Roots counts traversal roots started (one per explored component).
	Roots int

	// Visited counts distinct nodes entered.
	Visited int

	// EdgesExamined counts neighbour entries inspected.
	EdgesExamined int

	// MaxStackDepth is the deepest explicit stack reached; it equals the
	// longest root-to-node tree path in nodes.
	MaxStackDepth int
}

// DefaultOptions returns Options with a no-op logger, no stats collection,
// map-order roots and no hook.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
	}
}

// WithLogger routes traversal events to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStats makes the query record diagnostics into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithRoots fixes the order in which nodes are tried as traversal roots.
// Listed nodes come first; nodes that are not keys of the graph and repeats
// are skipped; keys not listed follow in map iteration order. The element
// type must match the graph's key type, otherwise the option is ignored.
func WithRoots[K comparable](roots ...K) Option {
	return func(o *Options) {
		o.roots = roots
	}
}

// WithOnVisit installs fn as a pre-order hook, called once per node when it is
// first entered. The parameter type must match the graph's key type,
// otherwise the hook is ignored.
func WithOnVisit[K comparable](fn func(K)) Option {
	return func(o *Options) {
		o.onVisit = fn
	}
}
