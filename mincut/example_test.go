package mincut_test

import (
	"fmt"
	"math/rand"

	"github.com/kk2491/multigraph/core"
	"github.com/kk2491/multigraph/mincut"
)

// ExampleMinCut finds the bridge between two clusters.
func ExampleMinCut() {
	g := core.NewGraph[string](core.Undirected)
	// Left cluster
	g.Connect("a", "b")
	g.Connect("b", "c")
	g.Connect("a", "c")
	// Right cluster
	g.Connect("x", "y")
	g.Connect("y", "z")
	g.Connect("x", "z")
	// Bridge
	g.Connect("c", "x")

	cut, err := mincut.MinCut(g,
		mincut.WithRand(rand.New(rand.NewSource(7))),
		mincut.WithTrials(300),
	)
	if err != nil {
		fmt.Println("mincut:", err)
		return
	}

	fmt.Println("minimum cut:", cut)
	// Output:
	// minimum cut: 1
}
