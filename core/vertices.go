// SPDX-License-Identifier: MIT

// Package core: vertex store implementation.
//
// The store is a growable dense slice of vertex records plus a key→slot
// map. Slots are append-only: nothing is ever removed or compacted, so a
// slot index stays valid for the life of the graph. Absence of a key is
// a normal outcome, never an error.

package core

import "sort"

// slot returns the store index of k, or false when k is unknown.
// Complexity: O(1) average.
func (g *Graph[K]) slot(k K) (int, bool) {
	i, ok := g.index[k]

	return i, ok
}

// ensure returns the slot of k, appending a fresh empty-list, unvisited
// vertex when k is new.
// Complexity: O(1) amortized.
func (g *Graph[K]) ensure(k K) int {
	if i, ok := g.index[k]; ok {
		return i
	}
	g.verts = append(g.verts, vertex[K]{key: k})
	i := len(g.verts) - 1
	g.index[k] = i

	return i
}

// AddVertex inserts the vertex k into the graph.
// A no-op when k already exists (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(k K) {
	g.ensure(k)
}

// HasVertex reports whether k exists in the graph.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(k K) bool {
	_, ok := g.index[k]

	return ok
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[K]) VertexCount() int {
	return len(g.verts)
}

// Vertices returns all vertex keys in ascending order.
// Complexity: O(V log V).
func (g *Graph[K]) Vertices() []K {
	keys := make([]K, 0, len(g.verts))
	for i := range g.verts {
		keys = append(keys, g.verts[i].key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// NonEmptyVertices returns, in ascending order, the keys of all vertices
// whose edge list is non-empty. An isolated vertex (never connected, or
// emptied by Collapse) is excluded.
// Complexity: O(V log V).
func (g *Graph[K]) NonEmptyVertices() []K {
	keys := make([]K, 0, len(g.verts))
	for i := range g.verts {
		if len(g.verts[i].edges) > 0 {
			keys = append(keys, g.verts[i].key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// Visited reports the traversal flag of k; false for unknown keys.
// Complexity: O(1).
func (g *Graph[K]) Visited(k K) bool {
	i, ok := g.index[k]
	if !ok {
		return false
	}

	return g.verts[i].visited
}

// MarkVisited sets the traversal flag of k; a no-op for unknown keys.
// Complexity: O(1).
func (g *Graph[K]) MarkVisited(k K) {
	if i, ok := g.index[k]; ok {
		g.verts[i].visited = true
	}
}

// ResetVisited clears every vertex's traversal flag. Traversals call
// this before returning so that repeated runs observe a clean graph.
// Complexity: O(V).
func (g *Graph[K]) ResetVisited() {
	for i := range g.verts {
		g.verts[i].visited = false
	}
}
