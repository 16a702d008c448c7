// Package scc computes strongly connected components of a directed
// core.Graph with Kosaraju's two-pass algorithm.
//
// Pass one runs a full-forest depth-first search and keeps its finish
// order — the exact post-order contract the dfs package preserves. Pass
// two walks the reversed graph, peeling vertices in reverse finish
// order: every walk tree is one strongly connected component.
//
// Components are returned in the order they are discovered in pass two
// (reverse topological order of the condensation); members of each
// component are sorted ascending.
//
// Complexity: O(V + E) time, O(V + E) memory (the reversed graph).
//
// Errors:
//
//   - ErrGraphNil     if g is nil.
//   - ErrUndirected   if g is undirected (every component would be a
//     whole connected component; use bfs instead).
//   - context.Canceled if the context is done.
package scc
