package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/sssp/pqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueue_Empty verifies Pop and Peek report ok=false on an empty queue.
func TestQueue_Empty(t *testing.T) {
	var q pqueue.Queue[int]
	assert.Equal(t, 0, q.Len())

	_, _, ok := q.Pop()
	assert.False(t, ok)
	_, _, ok = q.Peek()
	assert.False(t, ok)
}

// TestQueue_PopOrder verifies entries come out in non-decreasing priority.
func TestQueue_PopOrder(t *testing.T) {
	q := pqueue.New[string](4)
	q.Push("c", 30)
	q.Push("a", 10)
	q.Push("d", 40)
	q.Push("b", 20)

	item, prio, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", item)
	assert.Equal(t, int64(10), prio)
	assert.Equal(t, 4, q.Len(), "Peek must not remove")

	var got []string
	for q.Len() > 0 {
		item, _, ok := q.Pop()
		require.True(t, ok)
		got = append(got, item)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

// TestQueue_DuplicateItems verifies the same item may be queued several times
// with different priorities, which is what lazy decrease-key relies on.
func TestQueue_DuplicateItems(t *testing.T) {
	q := pqueue.New[int](0)
	q.Push(7, 50)
	q.Push(7, 5)
	q.Push(7, 25)

	_, p1, _ := q.Pop()
	_, p2, _ := q.Pop()
	_, p3, _ := q.Pop()
	assert.Equal(t, []int64{5, 25, 50}, []int64{p1, p2, p3})
}

// TestQueue_RandomizedAgainstSort compares heap order with a sorted slice.
func TestQueue_RandomizedAgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	q := pqueue.New[int](-1)
	want := make([]int64, 0, 500)
	for i := 0; i < 500; i++ {
		p := r.Int63n(1000)
		q.Push(i, p)
		want = append(want, p)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	got := make([]int64, 0, len(want))
	for q.Len() > 0 {
		_, p, _ := q.Pop()
		got = append(got, p)
	}
	assert.Equal(t, want, got)
}
