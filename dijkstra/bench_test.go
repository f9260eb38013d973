package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/dijkstra"
)

// BenchmarkShortestPaths measures full single-source runs on seeded random
// digraphs and grids of increasing size.
func BenchmarkShortestPaths(b *testing.B) {
	cases := []struct {
		name string
		ctor builder.Constructor
	}{
		{"Sparse_200", builder.RandomSparse(200, 0.05)},
		{"Sparse_1000", builder.RandomSparse(1000, 0.01)},
		{"Grid_50x50", builder.Grid(50, 50)},
		{"Grid_200x200", builder.Grid(200, 200)},
	}

	for _, tc := range cases {
		g, err := builder.BuildGraph(tc.ctor,
			builder.WithSeed(42),
			builder.WithWeightFn(builder.UniformWeightFn(1, 100)),
		)
		if err != nil {
			b.Fatalf("%s: %v", tc.name, err)
		}
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := dijkstra.ShortestPaths(g, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
