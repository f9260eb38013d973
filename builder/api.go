// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// api.go - the BuildGraph entry-point and the Constructor type.
//
// Topology factories live in impl_*.go:
//   - Path(n)             impl_path.go
//   - Cycle(n)            impl_path.go
//   - Complete(n)         impl_complete.go
//   - Grid(rows, cols)    impl_grid.go
//   - RandomSparse(n, p)  impl_random_sparse.go

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// Constructor allocates and populates a graph using the resolved
// builderConfig. Constructors validate parameters before allocating and
// return sentinel errors; they never panic.
type Constructor func(cfg builderConfig) (*core.Graph, error)

// BuildGraph resolves the builder configuration from opts and runs cons.
// Constructor errors are wrapped with the context "BuildGraph: %w".
func BuildGraph(cons Constructor, opts ...BuilderOption) (*core.Graph, error) {
	if cons == nil {
		return nil, fmt.Errorf("BuildGraph: nil constructor: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(opts...)
	g, err := cons(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// addEdge inserts from→to with the next configured weight, tagging failures
// with the constructor name.
func addEdge(method string, g *core.Graph, cfg builderConfig, from, to int) error {
	w := cfg.weight()
	if err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %v: %w", method, from, to, w, err, ErrConstructFailed)
	}

	return nil
}
