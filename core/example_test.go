package core_test

import (
	"fmt"

	"github.com/kk2491/multigraph/core"
)

// ExampleGraph_Collapse contracts one corner of a triangle and shows the
// merged weight on the surviving pair.
func ExampleGraph_Collapse() {
	g := core.NewGraph[int](core.Undirected)
	g.Connect(1, 2)
	g.Connect(2, 3)
	g.Connect(1, 3)

	if err := g.Collapse(1, 2); err != nil {
		fmt.Println("collapse:", err)
		return
	}

	fmt.Print(g)
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// 1 [visited=false]
	// 2 [visited=false] -> 3 (2, 1)
	// 3 [visited=false] -> 2 (2, 1)
	// edges: 2
}

// ExampleGraph_Connect shows weight accumulation on repeated merges.
func ExampleGraph_Connect() {
	g := core.NewGraph[string](core.Directed)
	g.Connect("a", "b", core.WithWeight(2))

	// Already connected: fails closed.
	ok, _ := g.Connect("a", "b", core.WithWeight(3))
	fmt.Println("reconnect:", ok)

	// Collapse-driven merges accumulate instead.
	g.Connect("c", "b", core.WithWeight(3))
	g.Collapse("c", "a")

	for _, e := range g.Neighbors("a") {
		fmt.Printf("%s -> %s (weight %d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// reconnect: false
	// a -> b (weight 5)
}
