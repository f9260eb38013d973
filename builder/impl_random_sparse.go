// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like digraph: each ordered pair (i,j), i ≠ j, becomes an
//     arc independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order: i asc, then j asc; one Bernoulli draw per pair, then one
//     weight draw per accepted arc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph over n
// vertices with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minRandomSparseVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				var take bool
				switch {
				case p == probMin:
					take = false
				case p == probMax:
					take = true
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err = addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}
