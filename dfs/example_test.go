package dfs_test

import (
	"fmt"

	"github.com/kk2491/multigraph/core"
	"github.com/kk2491/multigraph/dfs"
)

// ExampleDFS shows the finish order on a small DAG: sinks surface first,
// the root last.
func ExampleDFS() {
	g := core.NewGraph[int](core.Directed)
	g.Connect(1, 2)
	g.Connect(2, 3)
	g.Connect(1, 3)

	res, err := dfs.DFS(g, 1)
	if err != nil {
		fmt.Println("dfs:", err)
		return
	}

	fmt.Println("finish order:", res.Order)
	// Output:
	// finish order: [3 2 1]
}

// ExampleDFS_fullTraversal covers disconnected components in one pass.
func ExampleDFS_fullTraversal() {
	g := core.NewGraph[string](core.Directed)
	g.Connect("a", "b")
	g.Connect("x", "y")

	res, _ := dfs.DFS(g, "a", dfs.WithFullTraversal[string]())
	fmt.Println(res.Order)
	// Output:
	// [b a y x]
}
