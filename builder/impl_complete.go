// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_complete.go - Complete(n): every ordered pair (i, j), i ≠ j.
//
// Complexity: O(n²) arcs.
// Determinism: i asc, then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor for the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minCompleteVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err = addEdge(methodComplete, g, cfg, i, j); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}
