package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// DistanceTable holds the result of one ShortestPaths call: for every vertex
// either its shortest distance from the source or the unreachable marker.
// A DistanceTable is immutable once returned and safe for concurrent reads.
type DistanceTable struct {
	source int
	dist   []int64 // Unreachable for vertices with no path
	prev   []int   // nil unless ReturnPath; noVertex for source and unreachable
}

// Len returns the number of vertices covered by the table.
func (t *DistanceTable) Len() int { return len(t.dist) }

// Source returns the vertex the distances are measured from.
func (t *DistanceTable) Source() int { return t.source }

// Distance returns the shortest distance to v. ok is false when v is
// unreachable or not a vertex of the graph.
func (t *DistanceTable) Distance(v int) (dist int64, ok bool) {
	if v < 0 || v >= len(t.dist) || t.dist[v] == Unreachable {
		return 0, false
	}

	return t.dist[v], true
}

// Reachable reports whether a path from the source to v exists.
func (t *DistanceTable) Reachable(v int) bool {
	_, ok := t.Distance(v)
	return ok
}

// Distances returns a copy of all distances indexed by vertex, with
// Unreachable for vertices that have no path.
func (t *DistanceTable) Distances() []int64 {
	out := make([]int64, len(t.dist))
	copy(out, t.dist)

	return out
}

// Predecessor returns the vertex preceding v on the recorded shortest path.
// ok is false for the source, for unreachable vertices, for invalid v, and
// when predecessors were not recorded.
func (t *DistanceTable) Predecessor(v int) (u int, ok bool) {
	if t.prev == nil || v < 0 || v >= len(t.prev) || t.prev[v] == noVertex {
		return noVertex, false
	}

	return t.prev[v], true
}

// PathTo reconstructs one shortest path source→…→v as a vertex sequence.
//
// Returns:
//   - ErrNoPredecessors if the table was computed without WithReturnPath.
//   - core.ErrOutOfRange if v is not a vertex.
//   - ErrUnreachable if v has no path from the source.
//
// Complexity: O(path length).
func (t *DistanceTable) PathTo(v int) ([]int, error) {
	if t.prev == nil {
		return nil, ErrNoPredecessors
	}
	if v < 0 || v >= len(t.dist) {
		return nil, fmt.Errorf("dijkstra: PathTo(%d): %w", v, core.ErrOutOfRange)
	}
	if t.dist[v] == Unreachable {
		return nil, fmt.Errorf("%w: vertex %d", ErrUnreachable, v)
	}

	// Walk predecessors back to the source, then reverse in place.
	path := []int{v}
	for cur := v; cur != t.source; {
		cur = t.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
