// SPDX-License-Identifier: MIT

// Package core: central type declarations.
//
// This file declares Kind, Edge, Graph, EdgeOption, the sentinel errors,
// and the NewGraph constructor. Method implementations live in
// vertices.go, edges.go, connect.go, collapse.go, and view.go.
package core

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrSelfLoop indicates a Connect call with both endpoints equal.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrSameVertex indicates a Collapse call with src == dst.
	ErrSameVertex = errors.New("core: collapse endpoints are the same vertex")

	// ErrPartialConnection indicates an undirected edge recorded in one
	// endpoint's list but missing from the mirror list. It signals prior
	// corruption, distinct from an ordinary "not connected" result.
	ErrPartialConnection = errors.New("core: partially connected vertices")

	// ErrWeightMismatch indicates the two sides of an undirected edge
	// carried different weights at removal time.
	ErrWeightMismatch = errors.New("core: undirected edge weights out of sync")

	// ErrOptionViolation is returned when an invalid EdgeOption is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// Kind selects the edge semantics of a Graph.
type Kind uint8

const (
	// Undirected graphs mirror every edge in both endpoints' lists.
	Undirected Kind = iota

	// Directed graphs record an edge only in the tail's list.
	Directed
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k == Directed {
		return "directed"
	}

	return "undirected"
}

// Edge is the copy-safe view of one adjacency handed out to callers.
//
// Weight counts merged parallel edges; Distance is an independent length
// attribute, retained from the first edge written between the endpoints.
type Edge[K cmp.Ordered] struct {
	// From is the tail vertex key.
	From K

	// To is the head vertex key.
	To K

	// Weight is the multiplicity of the (merged) edge.
	Weight int64

	// Distance is the edge length, independent of Weight.
	Distance float64
}

// halfEdge is the stored form of an adjacency inside the tail's list.
// The tail is implicit (the owning vertex), so only the head survives.
type halfEdge[K cmp.Ordered] struct {
	to       K
	weight   int64
	distance float64
}

// vertex is one slot of the dense store.
type vertex[K cmp.Ordered] struct {
	key     K
	visited bool
	edges   []halfEdge[K] // strictly ascending by to; no duplicate heads
}

// Graph is the core in-memory multigraph structure.
//
// verts is dense and append-only: a slot, once allocated for a key, is
// never removed or reused, so slot indices stay stable under every
// mutation including Collapse. index maps each key to its slot.
//
// Not safe for concurrent use; callers must serialize externally.
type Graph[K cmp.Ordered] struct {
	kind  Kind
	verts []vertex[K]
	index map[K]int
}

// NewGraph creates an empty Graph of the given kind.
// Complexity: O(1)
func NewGraph[K cmp.Ordered](kind Kind) *Graph[K] {
	return &Graph[K]{
		kind:  kind,
		index: make(map[K]int),
	}
}

// Kind reports the graph's edge semantics.
func (g *Graph[K]) Kind() Kind { return g.kind }

// Directed reports whether edges are one-directional.
func (g *Graph[K]) Directed() bool { return g.kind == Directed }

// edgeConfig carries per-edge attributes through Connect.
type edgeConfig struct {
	weight   int64
	distance float64

	// internal error recorded during option parsing
	err error
}

// defaultEdgeConfig returns the connect defaults: weight 1, distance 1.0.
func defaultEdgeConfig() edgeConfig {
	return edgeConfig{weight: 1, distance: 1.0}
}

// EdgeOption configures properties of individual edges when connected.
// An invalid value is recorded internally and surfaced as
// ErrOptionViolation when Connect is invoked.
type EdgeOption func(*edgeConfig)

// WithWeight sets the initial multiplicity of the new edge.
//
//	w >= 1: valid multiplicity
//	w < 1:  invalid option → ErrOptionViolation
func WithWeight(w int64) EdgeOption {
	return func(c *edgeConfig) {
		if w < 1 {
			c.err = fmt.Errorf("%w: weight must be at least 1 (%d)", ErrOptionViolation, w)
			return
		}
		c.weight = w
	}
}

// WithDistance sets the length attribute of the new edge.
// Negative distances are invalid → ErrOptionViolation.
func WithDistance(d float64) EdgeOption {
	return func(c *edgeConfig) {
		if d < 0 {
			c.err = fmt.Errorf("%w: distance cannot be negative (%g)", ErrOptionViolation, d)
			return
		}
		c.distance = d
	}
}
