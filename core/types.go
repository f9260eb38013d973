// Package core defines the Graph and Edge types, the sentinel errors shared
// by every package of the engine, and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidArgument indicates a negative vertex count or a negative edge weight.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrOutOfRange = errors.New("core: vertex index out of range")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the non-negative traversal cost.
	Weight int64
}

// Graph is an append-only directed graph over the vertex indices [0, n).
//
// mu guards adjacency and edgeCount; n never changes after NewGraph.
type Graph struct {
	mu sync.RWMutex

	n         int
	edgeCount int

	// adjacency[from] holds the outgoing edges of from in insertion order.
	adjacency [][]Edge
}

// NewGraph allocates a graph with vertexCount vertices and no edges.
// Returns ErrInvalidArgument if vertexCount < 0.
// Complexity: O(V)
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: vertex count %d is negative", ErrInvalidArgument, vertexCount)
	}

	return &Graph{
		n:         vertexCount,
		adjacency: make([][]Edge, vertexCount),
	}, nil
}

// checkVertex returns a wrapped ErrOutOfRange if v is not a vertex of g.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrOutOfRange, v, g.n)
	}

	return nil
}
