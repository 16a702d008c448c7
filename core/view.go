// SPDX-License-Identifier: MIT

// Package core: derived graphs and the diagnostic dump.
//
// Reverse and Clone build fresh Graph instances; the source is never
// mutated and no internal storage is shared with the result.

package core

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Reverse returns a new graph of the same kind in which every edge a→b
// becomes b→a with its weight and distance preserved. The vertex set is
// carried over in full, isolated vertices included, so reversing twice
// reproduces the original topology. Visited flags start clean.
// Complexity: O(V + E).
func (g *Graph[K]) Reverse() *Graph[K] {
	out := NewGraph[K](g.kind)

	// Preserve the vertex set and slot order.
	for i := range g.verts {
		out.ensure(g.verts[i].key)
	}

	// Flip each stored half-edge. Undirected graphs store both
	// directions, so the flip reproduces the same symmetric pairs.
	for i := range g.verts {
		tail := g.verts[i].key
		for _, e := range g.verts[i].edges {
			hi, _ := out.slot(e.to)
			out.insertOrMerge(hi, tail, e.weight, e.distance)
		}
	}

	return out
}

// Clone returns a deep copy of the graph: kind, vertex set, visited
// flags, and every edge list. Mutating the clone never touches the
// source.
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	out := &Graph[K]{
		kind:  g.kind,
		verts: make([]vertex[K], len(g.verts)),
		index: make(map[K]int, len(g.index)),
	}
	for k, i := range g.index {
		out.index[k] = i
	}
	for i := range g.verts {
		v := g.verts[i]
		edges := make([]halfEdge[K], len(v.edges))
		copy(edges, v.edges)
		out.verts[i] = vertex[K]{key: v.key, visited: v.visited, edges: edges}
	}

	return out
}

// Dump writes a human-readable rendering of the graph to w: one line per
// vertex in ascending key order, showing the key, the visited flag, and
// each edge as "-> head (weight, distance)" in list order. The format is
// a debugging convenience and carries no compatibility contract.
// Complexity: O(V log V + E).
func (g *Graph[K]) Dump(w io.Writer) error {
	order := make([]int, 0, len(g.verts))
	for i := range g.verts {
		order = append(order, i)
	}
	sort.Slice(order, func(a, b int) bool { return g.verts[order[a]].key < g.verts[order[b]].key })

	for _, i := range order {
		v := &g.verts[i]
		if _, err := fmt.Fprintf(w, "%v [visited=%t]", v.key, v.visited); err != nil {
			return err
		}
		for _, e := range v.edges {
			if _, err := fmt.Fprintf(w, " -> %v (%d, %g)", e.to, e.weight, e.distance); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// String renders the graph via Dump.
func (g *Graph[K]) String() string {
	var sb strings.Builder
	_ = g.Dump(&sb)

	return sb.String()
}
