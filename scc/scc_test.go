package scc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk2491/multigraph/core"
	"github.com/kk2491/multigraph/scc"
)

func TestSCC_NilGraph(t *testing.T) {
	_, err := scc.SCC[int](nil)
	assert.ErrorIs(t, err, scc.ErrGraphNil)
}

func TestSCC_Undirected(t *testing.T) {
	g := core.NewGraph[int](core.Undirected)
	g.Connect(1, 2)
	_, err := scc.SCC(g)
	assert.ErrorIs(t, err, scc.ErrUndirected)
}

func TestSCC_Empty(t *testing.T) {
	g := core.NewGraph[int](core.Directed)
	comps, err := scc.SCC(g)
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestSCC_SingleCycle(t *testing.T) {
	g := core.NewGraph[int](core.Directed)
	g.Connect(1, 2)
	g.Connect(2, 3)
	g.Connect(3, 1)

	comps, err := scc.SCC(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, []int{1, 2, 3}, comps[0])
}

func TestSCC_TwoComponentsWithBridge(t *testing.T) {
	// 1⇄2 cycle feeding the 3⇄4 cycle; condensation order puts the
	// source component first.
	g := core.NewGraph[int](core.Directed)
	g.Connect(1, 2)
	g.Connect(2, 1)
	g.Connect(2, 3)
	g.Connect(3, 4)
	g.Connect(4, 3)

	comps, err := scc.SCC(g)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Equal(t, []int{1, 2}, comps[0])
	assert.Equal(t, []int{3, 4}, comps[1])
}

func TestSCC_DAGIsAllSingletons(t *testing.T) {
	g := core.NewGraph[string](core.Directed)
	g.Connect("a", "b")
	g.Connect("b", "c")
	g.Connect("a", "c")

	comps, err := scc.SCC(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}}, comps)
}

func TestSCC_IsolatedVertexIsItsOwnComponent(t *testing.T) {
	g := core.NewGraph[int](core.Directed)
	g.Connect(1, 2)
	g.AddVertex(9)

	comps, err := scc.SCC(g)
	require.NoError(t, err)
	assert.Len(t, comps, 3)
	assert.Contains(t, comps, []int{9})
}

func TestSCC_InputNotMutated(t *testing.T) {
	g := core.NewGraph[int](core.Directed)
	g.Connect(1, 2)
	g.Connect(2, 1)

	_, err := scc.SCC(g)
	require.NoError(t, err)
	assert.Equal(t, int64(2), g.EdgeCount())
	assert.False(t, g.Visited(1), "flags left clean for the caller")
}

func TestSCC_Cancellation(t *testing.T) {
	g := core.NewGraph[int](core.Directed)
	g.Connect(1, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scc.SCC(g, scc.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
