package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/sssp/bfs"
	"github.com/katalvlaran/sssp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond builds 0→1, 0→2, 1→3, 2→3, 3→4 plus an isolated vertex 5.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	for _, e := range [][3]int64{{0, 1, 5}, {0, 2, 1}, {1, 3, 1}, {2, 3, 9}, {3, 4, 2}} {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := diamond(t)
	_, err = bfs.BFS(g, 6)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_OrderAndDepth checks visit order, hop counts and unreached marking.
func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := bfs.BFS(diamond(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2, 3, bfs.NotReached}, res.Depth)
	assert.False(t, res.Reached(5))
	assert.True(t, res.Reached(4))

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, path)

	_, err = res.PathTo(5)
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

// TestBFS_Directed ensures edges are only followed From→To.
func TestBFS_Directed(t *testing.T) {
	res, err := bfs.BFS(diamond(t), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, res.Order)
	assert.False(t, res.Reached(0))
}

// TestBFS_MaxDepth stops expansion at the configured depth.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(diamond(t), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Reached(3))
}

// TestBFS_OnVisitAbort checks hook errors abort and are wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(diamond(t), 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancelled checks a cancelled context stops the search.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(diamond(t), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
