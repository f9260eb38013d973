// SPDX-License-Identifier: MIT
// Package builder provides deterministic constructors for directed, weighted
// core.Graph fixtures: paths, cycles, complete digraphs, grids and
// Erdős–Rényi-like random graphs.
//
// Usage:
//
//	g, err := builder.BuildGraph(builder.Grid(3, 4),
//	    builder.WithSeed(7),
//	    builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
//	)
//
// Determinism:
//
//   - Same constructor, parameters and seed ⇒ identical graph, edge order included.
//   - Without WithSeed/WithRand no randomness is available; RandomSparse with
//     0 < p < 1 then fails with ErrNeedRandSource.
//
// Vertex numbering:
//
//   - Path, Cycle, Complete, RandomSparse: 0..n-1.
//   - Grid(rows, cols): cell (r, c) is vertex r*cols + c.
//
// Errors are sentinels wrapped with the constructor name; branch with errors.Is.
package builder
