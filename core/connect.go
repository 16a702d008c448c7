// SPDX-License-Identifier: MIT

// Package core: connectivity layer.
//
// Connect, Disconnect and IsConnected specialize the edge list engine
// for the graph's Kind. Undirected graphs perform dual updates so that
// the mirror invariant (both lists hold the edge, equal weights) is
// maintained by construction; the read and removal paths verify it
// defensively and surface ErrPartialConnection / ErrWeightMismatch on
// violation rather than aborting.

package core

import "fmt"

// IsConnected reports whether an edge a→b exists. Identical keys are
// trivially connected. Unknown keys are simply not connected.
//
// Undirected graphs check both endpoints' lists; an edge present on one
// side only returns ErrPartialConnection, distinguishing corruption from
// an ordinary false.
// Complexity: O(deg).
func (g *Graph[K]) IsConnected(a, b K) (bool, error) {
	if a == b {
		return true, nil
	}
	ai, aok := g.slot(a)
	bi, bok := g.slot(b)
	if !aok || !bok {
		return false, nil
	}

	_, fwd := g.findEdge(ai, b)
	if g.kind == Directed {
		return fwd, nil
	}

	_, rev := g.findEdge(bi, a)
	if fwd != rev {
		return false, fmt.Errorf("%w: edge %v-%v recorded on one side only", ErrPartialConnection, a, b)
	}

	return fwd, nil
}

// Connect creates an edge between a and b, implicitly creating either
// vertex on first sight. Defaults: weight 1, distance 1.0; override via
// WithWeight / WithDistance.
//
// Returns (false, nil) without mutation when the pair is already
// connected, (true, nil) on success. Self-loops are a precondition
// violation: ErrSelfLoop.
// Complexity: O(deg).
func (g *Graph[K]) Connect(a, b K, opts ...EdgeOption) (bool, error) {
	// 1) Precondition: no self-loops, ever.
	if a == b {
		return false, fmt.Errorf("%w: %v", ErrSelfLoop, a)
	}

	// 2) Apply edge options and catch invalid ones immediately.
	cfg := defaultEdgeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return false, cfg.err
	}

	// 3) Both endpoints exist from here on.
	ai := g.ensure(a)
	bi := g.ensure(b)

	// 4) Fail closed when already connected (also surfaces partial state).
	connected, err := g.IsConnected(a, b)
	if err != nil {
		return false, err
	}
	if connected {
		return false, nil
	}

	// 5) Insert; undirected mirrors with identical weight and distance.
	g.insertOrMerge(ai, b, cfg.weight, cfg.distance)
	if g.kind == Undirected {
		g.insertOrMerge(bi, a, cfg.weight, cfg.distance)
	}

	return true, nil
}

// Disconnect removes the edge between a and b and returns the removed
// weight. Absent edges (or unknown keys) remove nothing and return 0 —
// a valid no-op, not an error.
//
// Undirected graphs remove both sides; disagreeing side weights indicate
// prior corruption and return the forward weight plus ErrWeightMismatch.
// Complexity: O(deg).
func (g *Graph[K]) Disconnect(a, b K) (int64, error) {
	ai, aok := g.slot(a)
	bi, bok := g.slot(b)
	if !aok || !bok {
		return 0, nil
	}

	w := g.removeEdge(ai, b)
	if g.kind == Directed {
		return w, nil
	}

	if wRev := g.removeEdge(bi, a); wRev != w {
		return w, fmt.Errorf("%w: %v-%v holds %d, %v-%v holds %d",
			ErrWeightMismatch, a, b, w, b, a, wRev)
	}

	return w, nil
}
