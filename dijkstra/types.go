// Package dijkstra defines the errors, the functional options and the
// DistanceTable result of the single-source shortest-path computation.
//
// Options:
//
//	– ReturnPath:  record predecessors so DistanceTable.PathTo can rebuild paths.
//	– MaxDistance: vertices whose distance would exceed this cap stay unreachable.
//	– OnSettle:    called when a queue entry is accepted and its edges relaxed.
//	– OnStale:     called when a stale queue entry is discarded.
//	– OnRelax:     called when an edge improves a tentative distance.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrOptionViolation if an option was given a meaningless value.
//	– ErrNoPredecessors  if PathTo is used without WithReturnPath.
//	– ErrUnreachable     if PathTo targets a vertex with no path from the source.
//
// Invalid source vertices surface as core.ErrOutOfRange.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by ShortestPaths and DistanceTable.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOptionViolation indicates an Option was supplied with an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPredecessors indicates path reconstruction on a table computed
	// without WithReturnPath.
	ErrNoPredecessors = errors.New("dijkstra: predecessors were not recorded")

	// ErrUnreachable indicates that no path exists from the source to the vertex.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")
)

// Unreachable is the distance reported by DistanceTable.Distances for
// vertices with no path from the source. Real distances are never negative,
// so it cannot be confused with one.
const Unreachable int64 = -1

// noVertex marks an absent predecessor.
const noVertex = -1

// Options configures the behavior of ShortestPaths.
//
// ReturnPath  – if true, predecessors are recorded for path reconstruction.
// MaxDistance – distances above this cap are not recorded (default math.MaxInt64).
// OnSettle, OnStale, OnRelax – observation hooks; never nil after DefaultOptions.
type Options struct {
	ReturnPath  bool
	MaxDistance int64

	OnSettle func(v int, dist int64)
	OnStale  func(v int, dist int64)
	OnRelax  func(from, to int, dist int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPaths.
// An invalid Option is recorded and surfaces as ErrOptionViolation when
// ShortestPaths is invoked.
type Option func(*Options)

// DefaultOptions returns an Options with no path recording, no distance cap
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		OnSettle:    func(int, int64) {},
		OnStale:     func(int, int64) {},
		OnRelax:     func(int, int, int64) {},
	}
}

// WithReturnPath enables predecessor recording in the resulting table.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the distances the search records.
//
//	max >= 0: vertices farther than max are reported unreachable
//	max < 0:  invalid option → ErrOptionViolation
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithOnSettle registers a callback run each time a vertex is popped with a
// current distance and its edges are about to be relaxed.
func WithOnSettle(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnStale registers a callback run each time an outdated queue entry
// is discarded.
func WithOnStale(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStale = fn
		}
	}
}

// WithOnRelax registers a callback run each time the edge from→to lowers the
// tentative distance of to.
func WithOnRelax(fn func(from, to int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
