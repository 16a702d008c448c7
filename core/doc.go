// SPDX-License-Identifier: MIT

// Package core provides a generic, in-memory weighted multigraph with
// vertex contraction, in directed and undirected variants over one engine.
//
// The Graph G = (V,E) is addressed by arbitrary ordered keys:
//
//   - Vertices live in a dense, append-only slot store indexed by a
//     key→slot map; slots are never removed or compacted, so a vertex
//     created once stays addressable for the life of the graph.
//   - Each vertex owns its outgoing edge list, kept strictly sorted in
//     ascending head-key order with no duplicate heads: connecting an
//     already-adjacent pair merges by weight accumulation instead of
//     storing a parallel edge (the weight IS the edge multiplicity).
//   - Undirected graphs mirror every edge in both endpoints' lists with
//     identical weights; the mirror invariant is verified on read
//     (ErrPartialConnection) and on removal (ErrWeightMismatch).
//   - Collapse(src, dst) folds src into dst: the direct src↔dst weight
//     is discarded (it would become a self-loop), every other incident
//     edge is rerouted onto dst with weights accumulated, and src is
//     left as a valid, isolated vertex.
//
// Why use core.Graph?
//
//   - Single engine, Kind flag — no directed/undirected type explosion.
//   - Deterministic iteration — Vertices(), Neighbors(), String() all
//     follow ascending key order.
//   - Weight conservation — total weight is invariant under Collapse
//     except for the discarded self-loop weight, which makes the type a
//     sound substrate for randomized contraction algorithms.
//   - Copy-only surface — callers receive Edge value copies and key
//     slices, never internal storage, so nothing external can corrupt
//     the lists.
//
// Core methods:
//
//	// Construction & vertex lifecycle
//	NewGraph[K](kind Kind) *Graph[K]          // O(1)
//	AddVertex(k K)                            // O(1) amortized, idempotent
//	HasVertex(k K) bool                       // O(1)
//
//	// Connectivity
//	Connect(a, b K, opts ...EdgeOption) (bool, error)  // O(deg)
//	Disconnect(a, b K) (int64, error)                  // O(deg)
//	IsConnected(a, b K) (bool, error)                  // O(deg)
//
//	// Contraction
//	Collapse(src, dst K) error                // O(deg(src)·maxdeg)
//
//	// Query
//	Neighbors(k K) []Edge[K]                  // O(deg), ascending copies
//	Vertices() []K                            // O(V log V), ascending
//	NonEmptyVertices() []K                    // O(V + sort)
//	VertexCount() int                         // O(1)
//	EdgeCount() int64                         // O(V + E), undirected halved
//	TotalWeight() int64                       // O(V + E), raw incident sum
//
//	// Traversal support
//	Visited(k K) bool / MarkVisited(k K) / ResetVisited()
//
//	// Derivation
//	Reverse() *Graph[K]                       // O(V + E)
//	Clone() *Graph[K]                         // O(V + E)
//
//	// Diagnostics
//	String() string / Dump(w io.Writer)       // non-authoritative rendering
//
// Errors:
//
//	ErrSelfLoop          – Connect with both endpoints equal.
//	ErrSameVertex        – Collapse with src == dst.
//	ErrPartialConnection – undirected edge present on one side only.
//	ErrWeightMismatch    – undirected mirror weights disagree on removal.
//	ErrOptionViolation   – invalid EdgeOption value.
//
// Absent vertices and absent edges are never errors: lookups report
// false, removals report zero weight, traversal support is a no-op.
//
// The structure is single-threaded by contract: no locking is performed,
// and callers needing concurrent access must serialize externally.
package core
