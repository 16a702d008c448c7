// Package scc: Kosaraju's two passes.
package scc

import (
	"cmp"
	"context"
	"errors"
	"sort"

	"github.com/kk2491/multigraph/core"
	"github.com/kk2491/multigraph/dfs"
)

// Sentinel errors for SCC computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("scc: graph is nil")

	// ErrUndirected is returned for undirected graphs.
	ErrUndirected = errors.New("scc: undirected graphs not supported")
)

// Option configures SCC behavior via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for the computation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// SCC returns the strongly connected components of g. The input graph is
// read-only throughout: pass two runs on a reversed copy.
// Complexity: O(V + E).
func SCC[K cmp.Ordered](g *core.Graph[K], opts ...Option) ([][]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Pass one: forest finish order. The start key is ignored in full
	// traversal mode.
	var zero K
	first, err := dfs.DFS(g, zero,
		dfs.WithFullTraversal[K](),
		dfs.WithContext[K](o.Ctx),
	)
	if err != nil {
		return nil, err
	}

	// Pass two: walk the transpose in reverse finish order; each tree
	// rooted at an unassigned vertex is one component.
	gr := g.Reverse()
	assigned := make(map[K]bool, len(first.Order))
	comps := make([][]K, 0)

	for i := len(first.Order) - 1; i >= 0; i-- {
		root := first.Order[i]
		if assigned[root] {
			continue
		}
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		comp := collect(gr, root, assigned)
		sort.Slice(comp, func(a, b int) bool { return comp[a] < comp[b] })
		comps = append(comps, comp)
	}

	return comps, nil
}

// collect gathers every unassigned vertex reachable from root in gr.
func collect[K cmp.Ordered](gr *core.Graph[K], root K, assigned map[K]bool) []K {
	assigned[root] = true
	comp := []K{root}
	stack := []K{root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range gr.Neighbors(top) {
			if assigned[e.To] {
				continue
			}
			assigned[e.To] = true
			comp = append(comp, e.To)
			stack = append(stack, e.To)
		}
	}

	return comp
}
