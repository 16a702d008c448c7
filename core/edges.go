// SPDX-License-Identifier: MIT

// Package core: edge list engine.
//
// Every vertex owns one slice of halfEdge records kept strictly sorted
// in ascending head-key order. A single sorted scan serves double duty:
// it detects an existing edge to the same head (merge by weight
// accumulation) and, failing that, yields the splice position — keeping
// insertion at the same O(degree) cost as a plain membership scan.

package core

// insertOrMerge adds an edge from slot ti to head with the given weight
// and distance. When an edge to head already exists its weight grows by
// weight and the stored distance is retained (first write wins).
// Callers guarantee ti's key != head.
// Complexity: O(deg).
func (g *Graph[K]) insertOrMerge(ti int, head K, weight int64, distance float64) {
	list := g.verts[ti].edges

	// 1) One scan: find merge target or splice point.
	pos := 0
	for pos < len(list) && list[pos].to < head {
		pos++
	}

	// 2) Existing edge: accumulate weight, keep first-written distance.
	if pos < len(list) && list[pos].to == head {
		list[pos].weight += weight
		return
	}

	// 3) Splice a new record at pos, preserving ascending order.
	list = append(list, halfEdge[K]{})
	copy(list[pos+1:], list[pos:])
	list[pos] = halfEdge[K]{to: head, weight: weight, distance: distance}
	g.verts[ti].edges = list
}

// removeEdge unlinks the edge from slot ti to head and returns its
// weight, or 0 when no such edge exists. Absence is valid input, not an
// error.
// Complexity: O(deg).
func (g *Graph[K]) removeEdge(ti int, head K) int64 {
	list := g.verts[ti].edges
	for pos := range list {
		if list[pos].to == head {
			w := list[pos].weight
			g.verts[ti].edges = append(list[:pos], list[pos+1:]...)

			return w
		}
		if list[pos].to > head {
			break // sorted: head cannot appear later
		}
	}

	return 0
}

// findEdge returns the stored record for ti→head, or false.
// Complexity: O(deg).
func (g *Graph[K]) findEdge(ti int, head K) (halfEdge[K], bool) {
	for _, e := range g.verts[ti].edges {
		if e.to == head {
			return e, true
		}
		if e.to > head {
			break
		}
	}

	return halfEdge[K]{}, false
}

// clearEdges releases every edge owned by slot ti, leaving an empty
// list. The vertex itself remains valid.
func (g *Graph[K]) clearEdges(ti int) {
	g.verts[ti].edges = nil
}

// Neighbors returns copies of all edges leaving k, in ascending head-key
// order. Unknown keys and isolated vertices yield nil.
// Complexity: O(deg).
func (g *Graph[K]) Neighbors(k K) []Edge[K] {
	i, ok := g.index[k]
	if !ok || len(g.verts[i].edges) == 0 {
		return nil
	}
	out := make([]Edge[K], 0, len(g.verts[i].edges))
	for _, e := range g.verts[i].edges {
		out = append(out, Edge[K]{From: k, To: e.to, Weight: e.weight, Distance: e.distance})
	}

	return out
}

// Degree returns the number of distinct heads in k's list; 0 for
// unknown keys. Complexity: O(1).
func (g *Graph[K]) Degree(k K) int {
	i, ok := g.index[k]
	if !ok {
		return 0
	}

	return len(g.verts[i].edges)
}

// TotalWeight returns the raw sum of weights over every stored
// half-edge — the total incident weight. Undirected graphs record each
// edge in both endpoints' lists, so this is twice EdgeCount there; for
// directed graphs the two coincide.
// Complexity: O(V + E).
func (g *Graph[K]) TotalWeight() int64 {
	var total int64
	for i := range g.verts {
		for _, e := range g.verts[i].edges {
			total += e.weight
		}
	}

	return total
}

// EdgeCount returns the total edge weight of the graph — the number of
// logical (parallel-merged) edges. Undirected graphs store each edge
// twice, so the raw sum is halved.
// Complexity: O(V + E).
func (g *Graph[K]) EdgeCount() int64 {
	total := g.TotalWeight()
	if g.kind == Undirected {
		total /= 2
	}

	return total
}
