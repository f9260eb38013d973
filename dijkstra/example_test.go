// Package dijkstra_test provides runnable examples for ShortestPaths.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// ExampleShortestPaths computes distances on the five-vertex reference graph.
func ExampleShortestPaths() {
	// 1) Five vertices, six directed weighted edges.
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 10)
	_ = g.AddEdge(0, 4, 3)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(4, 1, 4)
	_ = g.AddEdge(4, 2, 8)
	_ = g.AddEdge(2, 3, 9)

	// 2) Distances from vertex 0.
	tbl, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tbl.Distances())
	// Output: [0 7 9 18 3]
}

// ExampleDistanceTable_PathTo reconstructs a route with WithReturnPath.
func ExampleDistanceTable_PathTo() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)
	_ = g.AddEdge(1, 3, 3)

	tbl, _ := dijkstra.ShortestPaths(g, 0, dijkstra.WithReturnPath())
	path, _ := tbl.PathTo(3)
	d, _ := tbl.Distance(3)
	fmt.Printf("dist=%d path=%v\n", d, path)
	// Output: dist=5 path=[0 1 3]
}

// ExampleDistanceTable_Distance shows how unreachable vertices are reported.
func ExampleDistanceTable_Distance() {
	g, _ := core.NewGraph(3)

	tbl, _ := dijkstra.ShortestPaths(g, 0)
	for v := 0; v < tbl.Len(); v++ {
		if d, ok := tbl.Distance(v); ok {
			fmt.Printf("%d -> %d\n", v, d)
		} else {
			fmt.Printf("%d -> unreachable\n", v)
		}
	}
	// Output:
	// 0 -> 0
	// 1 -> unreachable
	// 2 -> unreachable
}
