// Package bfs provides breadth-first search over a core.Graph, returning hop
// counts, parent links and visit order from a start vertex.
//
// Edge weights are ignored: BFS answers “which vertices can be reached, and
// in how many edges”. It is the reachability reference for the weighted
// search in package dijkstra: a vertex has a finite shortest distance exactly
// when BFS reaches it.
//
// Hooks and limits:
//
//   - WithOnVisit(fn):    called per visited vertex; a returned error aborts the search.
//   - WithMaxDepth(d):    d > 0 stops expanding beyond depth d; d == 0 means no limit.
//   - WithContext(ctx):   cancellation is checked once per dequeued vertex.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and BFS enqueues in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
