// Package mincut: trial loop and edge sampling.
package mincut

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/kk2491/multigraph/bfs"
	"github.com/kk2491/multigraph/core"
)

// Sentinel errors for minimum-cut computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mincut: graph is nil")

	// ErrDirected is returned for directed graphs.
	ErrDirected = errors.New("mincut: directed graphs not supported")

	// ErrTooSmall is returned when fewer than two vertices carry edges.
	ErrTooSmall = errors.New("mincut: need at least two non-isolated vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mincut: invalid option supplied")
)

// Option configures MinCut behavior via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for the contraction trials.
type Options struct {
	// Ctx allows cancellation between trials.
	Ctx context.Context

	// Trials is the number of independent contraction runs.
	// Zero means automatic: n² for n non-isolated vertices.
	Trials int

	// Rand is the randomness source; defaults to a self-seeded one.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, automatic
// trial count, and a self-seeded randomness source.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Rand: rand.New(rand.NewSource(rand.Int63())),
	}
}

// WithTrials fixes the number of contraction trials.
//
//	n >= 1: run exactly n trials
//	n < 1:  invalid option → ErrOptionViolation
func WithTrials(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: trials must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Trials = n
	}
}

// WithRand sets a deterministic randomness source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// MinCut returns the minimum total weight of edges whose removal
// disconnects g, computed by randomized contraction. The input graph is
// never mutated; every trial works on a clone.
// Complexity: O(trials · V · E).
func MinCut[K cmp.Ordered](g *core.Graph[K], opts ...Option) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.Directed() {
		return 0, ErrDirected
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	active := g.NonEmptyVertices()
	n := len(active)
	if n < 2 {
		return 0, ErrTooSmall
	}

	// Disconnected inputs short-circuit to zero: BFS from one carrier
	// must reach every other carrier, or some cut is already empty.
	reach, err := bfs.BFS(g, active[0])
	if err != nil {
		return 0, err
	}
	if len(reach.Order) < n {
		return 0, nil
	}

	trials := o.Trials
	if trials == 0 {
		trials = n * n
	}

	best := int64(-1)
	for i := 0; i < trials; i++ {
		select {
		case <-o.Ctx.Done():
			return 0, o.Ctx.Err()
		default:
		}

		cut, err := contract(g.Clone(), o.Rand)
		if err != nil {
			return 0, err
		}
		if best < 0 || cut < best {
			best = cut
		}
	}

	return best, nil
}

// contract runs one Karger trial to completion on c.
func contract[K cmp.Ordered](c *core.Graph[K], r *rand.Rand) (int64, error) {
	for {
		carriers := c.NonEmptyVertices()
		if len(carriers) <= 2 {
			return c.EdgeCount(), nil
		}

		src, dst := pickEdge(c, carriers, r)
		if err := c.Collapse(src, dst); err != nil {
			return 0, fmt.Errorf("mincut: contraction failed: %w", err)
		}
	}
}

// pickEdge samples one undirected edge with probability proportional to
// its weight, returning its endpoints. carriers is ascending, so scanning
// tail < head visits every edge exactly once.
func pickEdge[K cmp.Ordered](c *core.Graph[K], carriers []K, r *rand.Rand) (src, dst K) {
	target := r.Int63n(c.EdgeCount())
	for _, tail := range carriers {
		for _, e := range c.Neighbors(tail) {
			if e.To < tail {
				continue // mirror half, already counted
			}
			target -= e.Weight
			if target < 0 {
				return tail, e.To
			}
		}
	}

	// Unreachable while EdgeCount matches the lists; keep the compiler
	// and the invariant honest by folding the last pair scanned.
	return carriers[0], carriers[1]
}
