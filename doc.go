// Package sssp is a single-source shortest-path engine for weighted directed
// graphs with non-negative integer weights.
//
// Under the hood, everything is organized under subpackages:
//
//	core/      — append-only, index-addressed graph store (NewGraph, AddEdge, Neighbors)
//	pqueue/    — generic binary-heap min-priority queue
//	dijkstra/  — ShortestPaths and the DistanceTable result
//	bfs/       — unweighted reachability and hop counts
//	builder/   — deterministic graph fixtures (path, cycle, complete, grid, random)
//	graphfile/ — YAML graph documents
//	metrics/   — Prometheus instrumentation for queries
//	cmd/sssp   — command-line front end
//
// Quick example:
//
//	g, _ := core.NewGraph(5)
//	_ = g.AddEdge(0, 4, 3)
//	_ = g.AddEdge(4, 1, 4)
//	t, _ := dijkstra.ShortestPaths(g, 0)
//	fmt.Println(t.Distances()) // [0 7 -1 -1 3]
//
// Unreachable vertices are reported as dijkstra.Unreachable (-1), or as
// ok == false from DistanceTable.Distance.
package sssp
