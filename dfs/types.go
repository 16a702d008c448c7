// Package dfs: options, result type, and error definitions.
package dfs

import (
	"cmp"
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[K cmp.Ordered] func(*Options[K])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[K cmp.Ordered] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(k K) error

	// OnExit, if non-nil, is invoked when a vertex becomes a sink — all
	// descendants explored — before it is appended to Result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(k K) error

	// FilterNeighbor, if non-nil, is consulted for each neighbor before
	// descent. Return true to traverse into that neighbor.
	FilterNeighbor func(k K) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// ascending key order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - no hooks, no neighbor filtering
//   - single-source traversal (FullTraversal = false)
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[K cmp.Ordered](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[K cmp.Ordered](fn func(k K) error) Option[K] {
	return func(o *Options[K]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit[K cmp.Ordered](fn func(k K) error) Option[K] {
	return func(o *Options[K]) {
		o.OnExit = fn
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(k) == false, that neighbor is never descended into.
func WithFilterNeighbor[K cmp.Ordered](fn func(k K) bool) Option[K] {
	return func(o *Options[K]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables forest traversal:
// DFS restarts from each unvisited vertex, covering disconnected components.
func WithFullTraversal[K cmp.Ordered]() Option[K] {
	return func(o *Options[K]) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[K cmp.Ordered] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []K

	// Depth maps each reached vertex to its discovery depth from its root.
	Depth map[K]int

	// Parent maps each reached vertex to the vertex that discovered it.
	// Roots do not appear in this map.
	Parent map[K]K

	// Visited flags which vertices were reached during the traversal.
	// (The graph's own flags are reset before DFS returns.)
	Visited map[K]bool
}
