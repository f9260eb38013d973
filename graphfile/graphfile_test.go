package graphfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/graphfile"
)

const reference = `
vertices: 5
edges:
  - {from: 0, to: 1, weight: 10}
  - {from: 0, to: 4, weight: 3}
  - {from: 1, to: 2, weight: 2}
  - {from: 4, to: 1, weight: 4}
  - {from: 4, to: 2, weight: 8}
  - {from: 2, to: 3, weight: 9}
`

// TestDecode_Reference loads the reference document and queries it.
func TestDecode_Reference(t *testing.T) {
	g, err := graphfile.Decode(strings.NewReader(reference))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())

	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 7, 9, 18, 3}, tbl.Distances())
}

// TestDecode_Errors checks malformed and invalid documents.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"missing vertices", "edges: []\n", graphfile.ErrMissingVertices},
		{"negative vertices", "vertices: -1\n", core.ErrInvalidArgument},
		{"endpoint out of range", "vertices: 4\nedges:\n  - {from: 5, to: 0, weight: 3}\n", core.ErrOutOfRange},
		{"negative weight", "vertices: 4\nedges:\n  - {from: 0, to: 1, weight: -2}\n", core.ErrInvalidArgument},
	}
	for _, tc := range cases {
		_, err := graphfile.Decode(strings.NewReader(tc.doc))
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	_, err := graphfile.Decode(strings.NewReader("vertices: 2\nnodes: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

// TestEncode_RoundTrip checks Encode output decodes to the same edges.
func TestEncode_RoundTrip(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 0, 4))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 1, 1))

	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, g))

	back, err := graphfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), back.VertexCount())
	assert.Equal(t, g.Edges(), back.Edges())
}

// TestLoad reads a document from disk and reports missing files.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(reference), 0o600))

	g, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	_, err = graphfile.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
