// Package dijkstra computes single-source shortest paths on a core.Graph
// whose edge weights are non-negative.
//
// Overview:
//
//   - ShortestPaths(g, source) returns a DistanceTable holding, for every
//     vertex, its minimum total edge weight from source, or the explicit
//     Unreachable marker when no path exists.
//   - A min-priority queue (package pqueue) drives the greedy expansion order.
//     Improved distances are pushed as new entries and outdated entries are
//     discarded when popped, so no decrease-key or visited set is needed.
//   - Correctness relies on non-negative weights, which core.Graph enforces
//     at insertion time.
//
// API reference:
//
//	func ShortestPaths(
//	    g *core.Graph,
//	    source int,
//	    opts ...Option,
//	) (*DistanceTable, error)
//
//	  - opts:
//	      • WithReturnPath():           record predecessors for PathTo.
//	      • WithMaxDistance(int64):     report vertices beyond the cap as unreachable.
//	      • WithOnSettle / WithOnStale / WithOnRelax: observation hooks.
//
//	DistanceTable:
//	  Distance(v) (int64, bool)   // false ⇒ unreachable
//	  Distances() []int64         // Unreachable (-1) for vertices with no path
//	  PathTo(v) ([]int, error)    // needs WithReturnPath
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph.
//   - ErrOptionViolation: invalid option value (e.g. negative MaxDistance).
//   - core.ErrOutOfRange: source (or PathTo target) outside [0, V).
//   - ErrNoPredecessors:  PathTo without WithReturnPath.
//   - ErrUnreachable:     PathTo toward a vertex with no path.
//
// Thread safety:
//
//   - Each call allocates its own table and queue; concurrent calls on the
//     same graph are safe as long as no edges are added meanwhile.
//
// Example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1)
//	t, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := t.Distance(2)     // 5
//	path, _ := t.PathTo(2)    // [0 1 2]
package dijkstra
