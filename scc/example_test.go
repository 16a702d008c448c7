package scc_test

import (
	"fmt"

	"github.com/kk2491/multigraph/core"
	"github.com/kk2491/multigraph/scc"
)

// ExampleSCC condenses two cycles joined by a one-way bridge.
func ExampleSCC() {
	g := core.NewGraph[string](core.Directed)
	g.Connect("a", "b")
	g.Connect("b", "a")
	g.Connect("b", "x")
	g.Connect("x", "y")
	g.Connect("y", "x")

	comps, err := scc.SCC(g)
	if err != nil {
		fmt.Println("scc:", err)
		return
	}

	for _, c := range comps {
		fmt.Println(c)
	}
	// Output:
	// [a b]
	// [x y]
}
