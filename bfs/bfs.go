// Package bfs: the queue-driven walk.
package bfs

import (
	"cmp"
	"fmt"

	"github.com/kk2491/multigraph/core"
)

// queueItem pairs a vertex key with its BFS depth.
type queueItem[K cmp.Ordered] struct {
	key   K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K cmp.Ordered] struct {
	graph *core.Graph[K]
	opts  Options[K]
	queue []queueItem[K]
	res   *Result[K]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. The result lists vertices in discovery
// order, start first. An unknown start key yields an empty Result and a
// nil error; visited flags are cleared before returning either way.
// Complexity: O(V + E).
func BFS[K cmp.Ordered](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	res := &Result[K]{
		Order:  make([]K, 0, n),
		Depth:  make(map[K]int, n),
		Parent: make(map[K]K, n),
	}

	// Absent start: empty sequence, not an error.
	if !g.HasVertex(start) {
		return res, nil
	}

	// The walk borrows the graph's visited flags; leave them clean no
	// matter how it ends, so repeated traversals are idempotent.
	defer g.ResetVisited()

	w := &walker[K]{
		graph: g,
		opts:  o,
		queue: make([]queueItem[K], 0, n),
		res:   res,
	}

	// Seed the queue with the start vertex.
	g.MarkVisited(start)
	res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[K]{key: start})

	return res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per vertex)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.key)
		if err := w.opts.OnVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.key, err)
		}

		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors walks item's edge list in ascending head order,
// applying filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.key) {
		if !w.opts.FilterNeighbor(item.key, e.To) {
			continue
		}
		if w.graph.Visited(e.To) {
			continue
		}
		w.graph.MarkVisited(e.To)
		w.res.Depth[e.To] = nextDepth
		w.res.Parent[e.To] = item.key
		w.queue = append(w.queue, queueItem[K]{key: e.To, depth: nextDepth})
	}
}
