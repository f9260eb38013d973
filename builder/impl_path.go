// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   • Path:  n ≥ 1, arcs i→i+1 for i∈[0..n-2].
//   • Cycle: n ≥ 2, arcs i→(i+1) mod n.
//   • One weight draw per arc, in arc order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodPath      = "Path"
	methodCycle     = "Cycle"
	minPathVertices = 1
	minCycleVertex  = 2
)

// Path returns a Constructor for the directed path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minPathVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}

// Cycle returns a Constructor for the directed cycle 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minCycleVertex {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertex, ErrTooFewVertices)
		}
		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}
