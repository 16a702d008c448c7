// Package dfs implements iterative depth-first search on a core.Graph,
// reporting vertices in finishing order (post-order).
//
// The walk keeps an explicit stack of the current path — no recursion.
// At each step the top vertex's edge list is scanned for the first
// unvisited neighbor in ascending key order: if one exists it is pushed
// and the descent continues; otherwise the top vertex is a sink in
// discovery order, so it is appended to the result and popped. The
// finish order is the contract: algorithms such as Kosaraju's two-pass
// SCC computation depend on it, which is why Order is post-order and not
// discovery order (BFS gives discovery order).
//
// The walk uses the graph's own visited flags and clears them all before
// returning, so traversal is idempotent.
//
// Complexity:
//
//   - Time:   O(V + E) amortized for list-backed graphs of bounded
//     degree (each scan restarts at the head of the top's list).
//   - Memory: O(V) for the stack and result maps.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithOnVisit(fn)         pre-order hook on discovery; error aborts.
//   - WithOnExit(fn)          post-order hook before recording; error aborts.
//   - WithFilterNeighbor(fn)  skip neighbors by returning false.
//   - WithFullTraversal()     restart from every unvisited vertex in
//     ascending key order, covering disconnected components.
//
// Errors:
//
//   - ErrGraphNil         if g is nil.
//   - context.Canceled    if the context is done.
//   - any error returned by OnVisit or OnExit.
//
// An unknown start key is not an error: it yields an empty Result.
package dfs
