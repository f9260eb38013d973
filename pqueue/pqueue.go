package pqueue

import "container/heap"

// entry pairs an item with the priority it was pushed with.
type entry[T any] struct {
	item     T
	priority int64
}

// entries is the heap.Interface backing store, ordered by priority ascending.
type entries[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entries[T]) Len() int { return len(h) }

// Less defines the comparison: smaller priority → higher precedence.
func (h entries[T]) Less(i, j int) bool { return h[i].priority < h[j].priority }

// Swap swaps two entries in the heap.
func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *entries[T]) Push(x interface{}) { *h = append(*h, x.(entry[T])) }

// Pop removes the last entry; called by heap.Pop only.
func (h *entries[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // release references held by T
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue of T. The zero value is an empty queue ready
// to use.
type Queue[T any] struct {
	h entries[T]
}

// New returns an empty queue with room for capacity entries before growing.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{h: make(entries[T], 0, capacity)}
}

// Len returns the number of queued entries, stale or not.
func (q *Queue[T]) Len() int { return q.h.Len() }

// Push inserts item with the given priority.
func (q *Queue[T]) Push(item T, priority int64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority})
}

// Pop removes and returns the entry with the smallest priority.
// ok is false when the queue is empty.
func (q *Queue[T]) Pop() (item T, priority int64, ok bool) {
	if q.h.Len() == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.priority, true
}

// Peek returns the entry Pop would return without removing it.
func (q *Queue[T]) Peek() (item T, priority int64, ok bool) {
	if q.h.Len() == 0 {
		return item, 0, false
	}

	return q.h[0].item, q.h[0].priority, true
}
