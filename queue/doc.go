// Package queue implements the ordered multiset of (key, node) pairs
// that drives the LPA* wavefront: a binary heap (container/heap) keyed
// by min(value, rhs), plus a reverse index from node to heap position so
// a re-queue is O(log n) instead of a linear scan.
//
// What:
//
//   - Queue.Requeue: insert/update/remove a node given its fresh
//     value/rhs
//   - Queue.Pop: remove and return the lowest-key entry.
//   - Queue.Promote: a testability hook that forces a node to the top
//     with a deliberately-wrong key, to exercise invariant-violation
//     recovery in tests.
//
// Why:
//
//   - The reverse index (nodeIndex) is exactly the pattern gonum's
//     dynamic/dstarlite.go uses for its own D* Lite priority queue
//     (indexOf map[int]int alongside container/heap.Fix/Remove): ties
//     are broken by insertion sequence so Pop order is deterministic.
//
// Complexity: Requeue/Pop/Promote are O(log n); IsEmpty/MinKey are O(1).
package queue
