// Package multigraph is an in-memory weighted multigraph with dynamic
// vertex contraction — the building block for algorithms that repeatedly
// merge vertices while conserving aggregate edge weight (randomized
// minimum cut, component reduction, network simplification).
//
// 🚀 What is multigraph?
//
//	A small, generic, pure-Go library bringing together:
//		• Core primitives: keyed vertices, weight-merging edges, collapse
//		• Directed and undirected variants over one engine
//		• Traversals: BFS (level order), DFS (finish order)
//		• Graph reversal and deep cloning
//		• Consumers: Karger minimum cut, Kosaraju SCC
//
// ✨ Why choose multigraph?
//
//   - Generic keys – any ordered, comparable type addresses a vertex
//   - Weight conservation – parallel edges merge by weight accumulation,
//     collapse conserves total weight minus the folded self-loop
//   - Deterministic – every edge list is kept strictly sorted by head key
//   - Extensible – traversal hooks (OnVisit, OnExit…) for custom logic
//
// Everything is organized under five subpackages:
//
//	core/   — fundamental Graph and Edge types, connect/disconnect/collapse,
//	          reversal and cloning
//	bfs/    — breadth-first search, discovery order
//	dfs/    — iterative depth-first search, finish (post-) order
//	mincut/ — Karger randomized contraction minimum cut
//	scc/    — Kosaraju strongly connected components
//
// Quick ASCII example:
//
//	    1───2        collapse(1,2)        1    2══3
//	     ╲  │    ────────────────────▶        (weight 2)
//	      ╲ │     the 1-2 edge folds away,
//	        3     1-3 reroutes onto 2-3
//
//	go get github.com/kk2491/multigraph
package multigraph
