package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// ExampleGraph demonstrates construction, edge insertion and neighbor queries.
func ExampleGraph() {
	// 1) A graph with three vertices: 0, 1, 2.
	g, _ := core.NewGraph(3)

	// 2) Directed weighted edges; the parallel 0→1 edge is kept.
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(1, 2, 1)

	// 3) Outgoing edges of 0 in insertion order.
	nbs, _ := g.Neighbors(0)
	for _, e := range nbs {
		fmt.Printf("%d->%d w=%d\n", e.From, e.To, e.Weight)
	}
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// 0->1 w=4
	// 0->1 w=2
	// edges: 3
}

// ExampleGraph_AddEdge shows the two validation failures of AddEdge.
func ExampleGraph_AddEdge() {
	g, _ := core.NewGraph(4)

	err := g.AddEdge(5, 0, 3)
	fmt.Println(errors.Is(err, core.ErrOutOfRange))

	err = g.AddEdge(0, 1, -2)
	fmt.Println(errors.Is(err, core.ErrInvalidArgument))

	// Output:
	// true
	// true
}
