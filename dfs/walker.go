// Package dfs implements the shared traversal engine behind HasCycle and
// FindCycle: an explicit-stack depth-first search with parent exclusion.
//
// Each query owns one walker: its visited set, optional parent map and frame
// stack are created per call and never shared. A step returns a detection
// value instead of unwinding, so the first self-loop or back edge ends the
// whole traversal with no further work.
package dfs

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/undicycle/adjacency"
)

// event discriminates the outcome of a traversal.
type event int

const (
	eventNone     event = iota // traversal finished, no cycle
	eventSelfLoop              // node listed itself as neighbour
	eventBackEdge              // visited, non-parent neighbour
)

func (e event) String() string {
	switch e {
	case eventSelfLoop:
		return "self-loop"
	case eventBackEdge:
		return "back-edge"
	default:
		return "none"
	}
}

// detection is the discriminated result of a traversal. For eventSelfLoop
// from == to; for eventBackEdge from is the node being expanded and to the
// already-visited neighbour.
type detection[K comparable] struct {
	kind event
	from K
	to   K
}

// link is a parent-map entry. root marks the "no parent" sentinel.
type link[K comparable] struct {
	parent K
	root   bool
}

// frame is one level of the explicit DFS stack.
type frame[K comparable] struct {
	node      K
	parent    K
	hasParent bool
	nbs       []K
	next      int // index of the next neighbour to examine
}

// walker encapsulates the per-query traversal state.
type walker[K comparable] struct {
	graph   adjacency.Graph[K]
	opts    Options
	log     *zap.Logger
	onVisit func(K)

	visited map[K]struct{}
	parents map[K]link[K] // nil unless the query reconstructs cycles
	stack   []frame[K]
	stats   Stats
}

// newWalker resolves opts and allocates fresh state sized for g.
func newWalker[K comparable](g adjacency.Graph[K], trackParents bool, opts []Option) *walker[K] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker[K]{
		graph:   g,
		opts:    o,
		log:     o.Logger,
		visited: make(map[K]struct{}, len(g)),
	}
	if trackParents {
		w.parents = make(map[K]link[K], len(g))
	}
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(K))
		if !ok {
			w.log.Warn("dfs: WithOnVisit hook ignored, parameter type does not match graph key type")
		}
		w.onVisit = fn
	}

	return w
}

// run tries every root in order and returns the first detection.
func (w *walker[K]) run() detection[K] {
	det := detection[K]{}
	for _, root := range w.roots() {
		if _, seen := w.visited[root]; seen {
			continue
		}
		w.stats.Roots++
		if ce := w.log.Check(zap.DebugLevel, "dfs: new root"); ce != nil {
			ce.Write(zap.Any("root", root), zap.Int("visited", len(w.visited)))
		}
		if det = w.walk(root); det.kind != eventNone {
			w.log.Debug("dfs: cycle detected",
				zap.Stringer("kind", det.kind),
				zap.Any("from", det.from),
				zap.Any("to", det.to),
				zap.Int("depth", len(w.stack)),
			)
			break
		}
	}

	w.stats.Visited = len(w.visited)
	if w.opts.Stats != nil {
		*w.opts.Stats = w.stats
	}

	return det
}

// roots returns the root candidates: the WithRoots order when one applies,
// otherwise the graph keys in map order.
func (w *walker[K]) roots() []K {
	if w.opts.roots == nil {
		return w.graph.Nodes()
	}
	listed, ok := w.opts.roots.([]K)
	if !ok {
		w.log.Warn("dfs: WithRoots ignored, element type does not match graph key type")

		return w.graph.Nodes()
	}

	return adjacency.FromGraph(w.graph, listed).Order
}

// enter marks node visited, records its discovery parent and pushes its frame.
// For a child this is the parent-map write that precedes descending into it.
func (w *walker[K]) enter(node, parent K, hasParent bool) {
	w.visited[node] = struct{}{}
	if w.parents != nil {
		w.parents[node] = link[K]{parent: parent, root: !hasParent}
	}
	w.stack = append(w.stack, frame[K]{
		node:      node,
		parent:    parent,
		hasParent: hasParent,
		nbs:       w.graph.Neighbors(node),
	})
	if len(w.stack) > w.stats.MaxStackDepth {
		w.stats.MaxStackDepth = len(w.stack)
	}
	if w.onVisit != nil {
		w.onVisit(node)
	}
}

// walk explores the tree rooted at root. The loop body is one step of the
// recursive formulation: examine the next neighbour of the top frame, then
// descend, detect, or pop.
func (w *walker[K]) walk(root K) detection[K] {
	// 1. Start a fresh stack with the root; it has no parent to exclude.
	var none K
	w.stack = w.stack[:0]
	w.enter(root, none, false)

	for len(w.stack) > 0 {
		// 2. All neighbours of the top node examined: return to its parent.
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// 3. Take the next neighbour in list order.
		nb := top.nbs[top.next]
		top.next++
		w.stats.EdgesExamined++

		// 4. A node listing itself closes a cycle of length one.
		if nb == top.node {
			return detection[K]{kind: eventSelfLoop, from: nb, to: nb}
		}

		// 5. Unvisited: descend, recording top.node as the discovery parent.
		if _, seen := w.visited[nb]; !seen {
			w.enter(nb, top.node, true) // top is stale after this push
			continue
		}

		// 6. Visited and not the edge we arrived by: back edge.
		//    The root has no parent, so every visited neighbour counts.
		if !top.hasParent || nb != top.parent {
			return detection[K]{kind: eventBackEdge, from: top.node, to: nb}
		}
		// Otherwise it is the tree edge to the parent; skip it.
	}

	// 7. Tree exhausted without detection.
	return detection[K]{}
}
