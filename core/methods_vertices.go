// File: methods_vertices.go
// Role: Vertex-level queries: counts, membership, outgoing edges.

package core

// VertexCount returns V, the number of vertices fixed at construction.
func (g *Graph) VertexCount() int { return g.n }

// HasVertex reports whether v lies in [0, VertexCount()).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Neighbors returns a copy of the outgoing edges of v in insertion order.
// The returned slice may be modified freely by the caller.
// Returns ErrOutOfRange for an invalid v.
// Complexity: O(deg(v))
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adjacency[v]
	out := make([]Edge, len(list))
	copy(out, list)

	return out, nil
}

// OutDegree returns the number of outgoing edges of v, parallel edges and
// self-loops each counted once per insertion.
func (g *Graph) OutDegree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}
