// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on the same
// source vertex are safe and every edge is stored.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := newGraph(t, num)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, g.AddEdge(0, id, int64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	assert.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadsDuringWrites mixes readers and writers; the race
// detector is the real assertion here.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	g := newGraph(t, 10)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(id%10, (id+1)%10, int64(id))
		}(i)
		go func(id int) {
			defer wg.Done()
			_, _ = g.Neighbors(id % 10)
			_ = g.Edges()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, rounds, g.EdgeCount())
	assert.Len(t, g.Edges(), rounds)
}
