// Package dfs: the stack-driven walk.
package dfs

import (
	"cmp"
	"fmt"

	"github.com/kk2491/multigraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[K cmp.Ordered] struct {
	graph *core.Graph[K]
	opts  Options[K]
	res   *Result[K]
	stack []K // current path, root at the bottom
}

// DFS performs iterative depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components in ascending
// key order; otherwise it starts only from start (an unknown start key
// yields an empty Result and a nil error).
//
// Order holds the finish (post-) order: a vertex is recorded only once
// every neighbor reachable from it has finished. Visited flags are reset
// before returning, even on abort.
// Complexity: O(V + E) amortized.
func DFS[K cmp.Ordered](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result with capacity hint
	n := g.VertexCount()
	res := &Result[K]{
		Order:   make([]K, 0, n),
		Depth:   make(map[K]int, n),
		Parent:  make(map[K]K, n),
		Visited: make(map[K]bool, n),
	}

	// 4. Single-source mode: an absent start is an ordinary empty result
	if !o.FullTraversal && !g.HasVertex(start) {
		return res, nil
	}

	defer g.ResetVisited()
	w := &dfsWalker[K]{graph: g, opts: o, res: res}

	// 5. Traverse: forest or single tree
	if o.FullTraversal {
		for _, k := range g.Vertices() {
			if !g.Visited(k) {
				if err := w.walk(k); err != nil {
					return res, err
				}
			}
		}

		return res, nil
	}

	return res, w.walk(start)
}

// walk runs one stack-driven descent from root.
func (w *dfsWalker[K]) walk(root K) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	w.stack = append(w.stack[:0], root)

	for len(w.stack) > 0 {
		// Cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := w.stack[len(w.stack)-1]

		// Scan top's list for the first unvisited neighbor, ascending.
		next, found := w.nextUnvisited(top)
		if found {
			if err := w.discover(next, len(w.stack)); err != nil {
				return err
			}
			w.res.Parent[next] = top
			w.stack = append(w.stack, next)
			continue
		}

		// No candidates left: top is a sink in discovery order.
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnExit hook for %v: %w", top, err)
			}
		}
		w.res.Order = append(w.res.Order, top)
		w.stack = w.stack[:len(w.stack)-1]
	}

	return nil
}

// discover marks k visited at depth d and fires the pre-order hook.
func (w *dfsWalker[K]) discover(k K, d int) error {
	w.graph.MarkVisited(k)
	w.res.Visited[k] = true
	w.res.Depth[k] = d
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(k); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", k, err)
		}
	}

	return nil
}

// nextUnvisited returns the first unvisited, unfiltered neighbor of k in
// ascending head-key order.
func (w *dfsWalker[K]) nextUnvisited(k K) (K, bool) {
	for _, e := range w.graph.Neighbors(k) {
		if w.graph.Visited(e.To) {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
			continue
		}

		return e.To, true
	}

	var zero K

	return zero, false
}
