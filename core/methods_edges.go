// File: methods_edges.go
// Role: Edge insertion and edge enumeration.
// Determinism:
//   - Neighbors(v) and Edges() preserve insertion order per source vertex.
//   - Edges() lists source vertices in ascending index order.
// Concurrency:
//   - AddEdge under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge appends the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate both endpoints (ErrOutOfRange).
//  2. Validate weight >= 0 (ErrInvalidArgument).
//  3. Append to adjacency[from] under the write lock.
//
// Parallel edges and self-loops are accepted as-is.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if err := g.checkVertex(from); err != nil {
		return fmt.Errorf("AddEdge(%d, %d): from: %w", from, to, err)
	}
	if err := g.checkVertex(to); err != nil {
		return fmt.Errorf("AddEdge(%d, %d): to: %w", from, to, err)
	}
	if weight < 0 {
		return fmt.Errorf("%w: AddEdge(%d, %d): negative weight %d", ErrInvalidArgument, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// EdgeCount returns the number of edges added so far, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns a snapshot of every edge, grouped by source vertex in
// ascending order and in insertion order within a group.
// Complexity: O(V+E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}
