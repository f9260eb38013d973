// Package core provides the append-only, index-addressed directed graph store
// consumed by the shortest-path engine.
//
// The Graph G = (V,E) has a vertex count V fixed at construction time.
// Vertices are the implicit indices 0..V-1; there is no vertex object.
// Edges are directed, carry a non-negative int64 weight, and are stored
// per source vertex in insertion order:
//
//	adjacency[from] = []Edge{{From: from, To: to, Weight: w}, ...}
//
// Parallel edges between the same ordered pair are kept as separate entries.
// Self-loops are accepted.
//
// Core Methods:
//
//	NewGraph(vertexCount int) (*Graph, error)   // O(V)
//	AddEdge(from, to int, weight int64) error   // O(1) amortized
//	Neighbors(v int) ([]Edge, error)            // O(deg(v)), defensive copy
//	OutDegree(v int) (int, error)               // O(1)
//	HasVertex(v int) bool                       // O(1)
//	VertexCount() int                           // O(1)
//	EdgeCount() int                             // O(1)
//	Edges() []Edge                              // O(V+E)
//
// There is no edge removal and no reweighting.
//
// Errors:
//
//	ErrInvalidArgument – negative vertex count or negative edge weight
//	ErrOutOfRange      – vertex index outside [0, V)
//
// Concurrency:
//
// All methods are safe for concurrent use; adjacency is guarded by a
// sync.RWMutex. Queries observe whatever edges were present when each
// Neighbors call ran, so a graph should not be extended while a shortest-path
// computation over it is in flight.
package core
