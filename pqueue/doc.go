// Package pqueue provides a generic binary-heap min-priority queue keyed by
// int64 priorities.
//
// The queue supports only Push (insert) and Pop (extract-min). There is no
// decrease-key: callers that need to lower a priority push a fresh entry and
// discard the outdated one when it surfaces (the “lazy decrease-key”
// pattern used by package dijkstra).
//
// Complexity:
//
//   - Push: O(log n)
//   - Pop:  O(log n)
//   - Peek, Len: O(1)
//
// Ties between equal priorities are broken arbitrarily; callers must not rely
// on any particular order among them.
//
// A Queue is not safe for concurrent use.
package pqueue
