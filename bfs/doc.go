// Package bfs provides breadth-first search over a core.Graph, returning
// the discovery order, per-vertex depths, and parent links of the BFS tree.
//
// BFS explores vertices level by level from a start key, taking each
// vertex's neighbors in ascending key order (the order the core engine
// stores them in), with optional hooks, depth limiting, and neighbor
// filtering.
//
// The walk uses the graph's own visited flags and clears them all before
// returning, so traversal is idempotent: running BFS twice from the same
// start on an unmodified graph yields identical results and leaves every
// flag false.
//
// Complexity:
//
//   - Time:   O(V + E), plus hook and filter overhead.
//   - Memory: O(V) for the queue and result maps.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithOnVisit(fn)         hook on visit; an error aborts the walk.
//   - WithMaxDepth(d)         stop exploring beyond depth d (0 = no limit).
//   - WithFilterNeighbor(fn)  skip edges by returning false.
//
// Errors:
//
//   - ErrGraphNil         if g is nil.
//   - ErrOptionViolation  for invalid option values.
//   - context.Canceled    if the context is done.
//
// An unknown start key is not an error: it yields an empty Result.
package bfs
