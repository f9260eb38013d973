// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_grid.go — Grid(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is vertex r*cols + c (row-major).
//   • For each cell, emit Right then Bottom neighbor, each as a pair of
//     opposite arcs (forward first). Each arc draws its own weight.
//
// Complexity: O(rows*cols) vertices and arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		g, err := core.NewGraph(rows * cols)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodGrid, err)
		}

		link := func(u, v int) error {
			if err := addEdge(methodGrid, g, cfg, u, v); err != nil {
				return err
			}
			return addEdge(methodGrid, g, cfg, v, u)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err = link(u, u+1); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err = link(u, u+cols); err != nil {
						return nil, err
					}
				}
			}
		}

		return g, nil
	}
}
