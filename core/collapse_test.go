package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kk2491/multigraph/core"
)

// buildTriangle is the canonical contraction fixture: 1-2, 2-3, 1-3.
func buildTriangle() *core.Graph[int] {
	g := core.NewGraph[int](core.Undirected)
	g.Connect(1, 2)
	g.Connect(2, 3)
	g.Connect(1, 3)

	return g
}

func TestCollapse_SameVertex(t *testing.T) {
	g := buildTriangle()
	err := g.Collapse(2, 2)
	require.ErrorIs(t, err, core.ErrSameVertex)
	require.Equal(t, int64(3), g.EdgeCount(), "failed collapse must not mutate")
}

func TestCollapse_UnknownSrcIsNoop(t *testing.T) {
	g := buildTriangle()
	require.NoError(t, g.Collapse(99, 1))
	require.Equal(t, int64(3), g.EdgeCount())
	require.False(t, g.HasVertex(99))
}

func TestCollapse_Triangle(t *testing.T) {
	require := require.New(t)
	g := buildTriangle()

	require.NoError(g.Collapse(1, 2))

	// 1 is isolated but still present
	require.True(g.HasVertex(1))
	require.Nil(g.Neighbors(1))

	// 2-3 merged: rerouted 1-3 accumulated onto the original 2-3
	nbs2 := g.Neighbors(2)
	require.Len(nbs2, 1)
	require.Equal(3, nbs2[0].To)
	require.Equal(int64(2), nbs2[0].Weight)

	nbs3 := g.Neighbors(3)
	require.Len(nbs3, 1)
	require.Equal(2, nbs3[0].To)
	require.Equal(int64(2), nbs3[0].Weight, "mirror weight must match after collapse")

	// Exactly the direct 1-2 weight left the graph
	require.Equal(int64(2), g.EdgeCount())
	assertSorted(t, g)
}

func TestCollapse_WeightConservation(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph[int](core.Undirected)
	g.Connect(1, 2, core.WithWeight(5))
	g.Connect(1, 3, core.WithWeight(2))
	g.Connect(1, 4, core.WithWeight(7))
	g.Connect(2, 3, core.WithWeight(1))
	g.Connect(3, 4, core.WithWeight(4))

	before := g.EdgeCount()
	loop, err := g.IsConnected(1, 2)
	require.NoError(err)
	require.True(loop)

	require.NoError(g.Collapse(1, 2))

	// Total weight dropped by exactly the direct 1-2 weight.
	require.Equal(before-5, g.EdgeCount())
	assertSorted(t, g)

	// Undirected symmetry still holds everywhere.
	for _, k := range g.Vertices() {
		for _, e := range g.Neighbors(k) {
			mirror := g.Neighbors(e.To)
			found := false
			for _, m := range mirror {
				if m.To == k {
					require.Equal(e.Weight, m.Weight, "asymmetric weight %v-%v", k, e.To)
					found = true
				}
			}
			require.True(found, "missing mirror for %v-%v", k, e.To)
		}
	}
}

func TestCollapse_NoDirectEdgeDiscardNothing(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph[int](core.Undirected)
	g.Connect(1, 3, core.WithWeight(2))
	g.Connect(2, 4, core.WithWeight(3))

	before := g.EdgeCount()
	require.NoError(g.Collapse(1, 2))
	require.Equal(before, g.EdgeCount(), "no src-dst edge, nothing to discard")

	// 1's edge rerouted onto 2
	conn, err := g.IsConnected(2, 3)
	require.NoError(err)
	require.True(conn)
}

func TestCollapse_CreatesUnknownDst(t *testing.T) {
	g := core.NewGraph[int](core.Undirected)
	g.Connect(1, 3)
	require.NoError(t, g.Collapse(1, 2))
	require.True(t, g.HasVertex(2))

	conn, err := g.IsConnected(2, 3)
	require.NoError(t, err)
	require.True(t, conn)
}

func TestCollapse_DistanceFirstWriteWins(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph[int](core.Undirected)
	g.Connect(2, 3, core.WithDistance(9.0))
	g.Connect(1, 3, core.WithDistance(4.0))

	require.NoError(g.Collapse(1, 2))

	// 1-3 folds into the pre-existing 2-3: weight accumulates,
	// the stored distance of 2-3 is retained.
	nbs := g.Neighbors(2)
	require.Len(nbs, 1)
	require.Equal(int64(2), nbs[0].Weight)
	require.Equal(9.0, nbs[0].Distance)
}

func TestCollapse_Directed(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph[int](core.Directed)
	g.Connect(1, 2, core.WithWeight(2))
	g.Connect(2, 1, core.WithWeight(3))
	g.Connect(1, 3, core.WithWeight(4))
	g.Connect(3, 1, core.WithWeight(5))

	require.NoError(g.Collapse(1, 2))

	// Both directions of the direct 1↔2 pair were discarded.
	require.Nil(g.Neighbors(1))

	// 1→3 became 2→3; 3→1 became 3→2.
	nbs2 := g.Neighbors(2)
	require.Len(nbs2, 1)
	require.Equal(3, nbs2[0].To)
	require.Equal(int64(4), nbs2[0].Weight)

	nbs3 := g.Neighbors(3)
	require.Len(nbs3, 1)
	require.Equal(2, nbs3[0].To)
	require.Equal(int64(5), nbs3[0].Weight)
	assertSorted(t, g)
}

func TestCollapse_Chained(t *testing.T) {
	require := require.New(t)
	// Contract a 5-cycle down to two vertices; the cut between the two
	// survivors must carry all the weight that never became a loop.
	g := core.NewGraph[int](core.Undirected)
	for i := 1; i <= 5; i++ {
		g.Connect(i, i%5+1)
	}

	require.NoError(g.Collapse(5, 4))
	require.NoError(g.Collapse(3, 4))
	require.NoError(g.Collapse(2, 1))

	require.ElementsMatch([]int{1, 4}, g.NonEmptyVertices())
	require.Equal(int64(2), g.EdgeCount(), "a cycle's minimum cut is 2")
	assertSorted(t, g)
}
