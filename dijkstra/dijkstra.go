// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Each successful relaxation pushes one queue entry: at most E pushes.
//   - Each pop costs O(log E); stale pops are discarded in O(1) after the pop.
//   - Space: O(V + E)
//   - O(V) for the distance table (and optional predecessors).
//   - O(E) worst-case queue entries under “lazy decrease-key”.
//
// Notes on implementation choices:
//
//   - Negative weights cannot exist: core.Graph rejects them at insertion,
//     so no per-query pre-scan is done.
//   - There is no visited set. An entry (u, d) popped with d > dist[u] is
//     stale and discarded; every vertex is relaxed productively at most once.
//   - A candidate distance that would overflow int64 cannot improve any label
//     and the edge is skipped.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/pqueue"
)

// ShortestPaths computes the shortest distance from source to every vertex
// of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. source must be a vertex of g (core.ErrOutOfRange).
//
// All validation happens before any computation; on error no table is
// returned. Unreachable vertices are a normal outcome, not an error.
//
// The graph must not be extended while the call is in flight.
func ShortestPaths(g *core.Graph, source int, opts ...Option) (*DistanceTable, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate source
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("dijkstra: source %d not in [0, %d): %w", source, g.VertexCount(), core.ErrOutOfRange)
	}

	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.table, nil
}

// runner holds the mutable state for a single ShortestPaths execution.
type runner struct {
	g       *core.Graph
	options Options
	table   *DistanceTable
	pq      *pqueue.Queue[int] // entries are (vertex, distance at push)
}

// newRunner allocates the table with every vertex unreachable except the
// source, and seeds the queue with (source, 0).
func newRunner(g *core.Graph, source int, cfg Options) *runner {
	n := g.VertexCount()

	t := &DistanceTable{
		source: source,
		dist:   make([]int64, n),
	}
	for v := range t.dist {
		t.dist[v] = Unreachable
	}
	t.dist[source] = 0

	if cfg.ReturnPath {
		t.prev = make([]int, n)
		for v := range t.prev {
			t.prev[v] = noVertex
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		table:   t,
		pq:      pqueue.New[int](n),
	}
	r.pq.Push(source, 0)

	return r
}

// process is the core loop: pop the minimum entry, discard it if stale,
// otherwise relax its outgoing edges. Runs until the queue is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		u, d, _ := r.pq.Pop()

		// A shorter distance was recorded after this entry was pushed.
		if d > r.table.dist[u] {
			r.options.OnStale(u, d)
			continue
		}

		r.options.OnSettle(u, d)
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u, whose distance d is final, and lowers
// the tentative distance of its head whenever d + w is strictly smaller.
func (r *runner) relax(u int, d int64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	dist := r.table.dist
	for _, e := range edges {
		if e.Weight > math.MaxInt64-d {
			continue
		}
		cand := d + e.Weight

		if cand > r.options.MaxDistance {
			continue
		}
		// Unreachable stands for +∞.
		if dist[e.To] != Unreachable && cand >= dist[e.To] {
			continue
		}

		dist[e.To] = cand
		if r.table.prev != nil {
			r.table.prev[e.To] = u
		}
		r.options.OnRelax(u, e.To, cand)
		r.pq.Push(e.To, cand)
	}

	return nil
}
