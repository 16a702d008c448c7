// SPDX-License-Identifier: MIT

// Package core: contraction engine.

package core

import "fmt"

// Collapse folds vertex src into vertex dst:
//
//  1. The direct src↔dst edge, if any, is removed first — renamed to dst
//     it would be a self-loop — and its weight is discarded, not
//     re-added anywhere.
//  2. Every remaining edge src→x, in ascending list order, is rerouted:
//     the back-edge x→src is removed and its weight re-merged as x→dst;
//     an edge dst→x is merged in with the original src→x weight. Merges
//     accumulate: when x and dst were already adjacent the weights add
//     instead of duplicating, and the already-stored distance wins.
//  3. src's edge list is cleared. src stays a valid, isolated vertex in
//     the store; callers treating it as gone must simply stop naming it.
//
// Total incident weight is conserved except for the weight discarded in
// step 1. An unknown src is a no-op. Collapse with src == dst is a
// precondition violation: ErrSameVertex.
// Complexity: O(deg(src) · maxdeg).
func (g *Graph[K]) Collapse(src, dst K) error {
	// 1) Precondition.
	if src == dst {
		return fmt.Errorf("%w: %v", ErrSameVertex, src)
	}
	si, ok := g.slot(src)
	if !ok {
		return nil // nothing to fold
	}
	di := g.ensure(dst)

	// 2) Drop the would-be self-loops before renaming anything. Directed
	// graphs may hold src→dst and dst→src independently; both must go.
	if _, err := g.Disconnect(src, dst); err != nil {
		return err
	}
	if _, err := g.Disconnect(dst, src); err != nil {
		return err
	}

	// 3) Reroute every surviving src→x onto dst, in list order.
	// Neither x's nor dst's list aliases src's (self-loops are banned and
	// dst was just disconnected), so iterating the live slice is safe.
	for _, e := range g.verts[si].edges {
		xi, _ := g.slot(e.to) // x exists: it holds the other endpoint

		// Redirect the back-edge x→src, when x pointed back at all.
		if back, exists := g.findEdge(xi, src); exists {
			g.removeEdge(xi, src)
			g.insertOrMerge(xi, dst, back.weight, back.distance)
		}

		// Fold the forward edge into dst's list with its original weight.
		g.insertOrMerge(di, e.to, e.weight, e.distance)
	}

	// 4) Empty src; the slot itself is never released.
	g.clearEdges(si)

	return nil
}
