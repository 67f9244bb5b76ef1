package queue

import (
	"container/heap"

	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/numeric"
)

// entry is one (key, node) pair tracked by the heap. seq breaks ties
// between equal keys by insertion order, so Pop's "ties broken
// arbitrarily but deterministically" guarantee becomes
// concrete and testable.
type entry struct {
	node cspace.Node
	key  float64
	seq  uint64
}

// Queue is a min-heap of entries ordered by ascending key, with a
// reverse index from node to heap position for O(log n) Requeue.
//
// The container/heap.Interface methods live on the unexported pqHeap
// view of this same struct (see heap.go), so Queue's own exported
// Pop() can return a cspace.Node directly instead of colliding with
// heap.Interface's Pop() any.
type Queue struct {
	entries   []*entry
	nodeIndex map[cspace.Node]int
	nextSeq   uint64
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{nodeIndex: make(map[cspace.Node]int)}
}

// IsEmpty reports whether the queue currently holds no entries.
func (q *Queue) IsEmpty() bool {
	return len(q.entries) == 0
}

// Len returns the number of entries currently queued.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Contains reports whether node currently has an entry in the queue.
func (q *Queue) Contains(node cspace.Node) bool {
	_, ok := q.nodeIndex[node]
	return ok
}

// MinKey returns the smallest key currently on the queue, and false if
// the queue is empty. Consulted by propagator's queue-key threshold and
// by facade.GetLowestInconsistentValue.
func (q *Queue) MinKey() (float64, bool) {
	if q.IsEmpty() {
		return 0, false
	}
	return q.entries[0].key, true
}

// MaxKey returns the largest key currently on the queue, and false if
// the queue is empty. Consulted by facade's UPWIND/DOWNWIND status
// classification.
func (q *Queue) MaxKey() (float64, bool) {
	if q.IsEmpty() {
		return 0, false
	}
	max := q.entries[0].key
	for _, e := range q.entries[1:] {
		if e.key > max {
			max = e.key
		}
	}
	return max, true
}

// Requeue implements this requeue(node, value, rhs, flag):
//
//   - If |value-rhs| <= Epsilon, the node becomes consistent: removed
//     from the queue if present, otherwise left untouched.
//   - Otherwise key = min(value, rhs). A node not yet queued is
//     inserted; a queued node whose key is unchanged (within Epsilon)
//     is left untouched; otherwise its key is updated in place.
//
// Requeue returns whether the node is on the queue after the call, so
// callers can update cspace.Flag's on-queue bit without a second query.
func (q *Queue) Requeue(node cspace.Node, value, rhs float64) bool {
	if numeric.WithinEpsilon(value, rhs) {
		q.remove(node)
		return false
	}
	key := numeric.Min2(value, rhs)
	if i, ok := q.nodeIndex[node]; ok {
		if numeric.WithinEpsilon(q.entries[i].key, key) {
			return true
		}
		q.entries[i].key = key
		heap.Fix((*pqHeap)(q), i)
		return true
	}
	heap.Push((*pqHeap)(q), &entry{node: node, key: key, seq: q.nextSeqNo()})
	return true
}

// Pop removes and returns the entry with the lowest key. Precondition:
// the queue must be non-empty; Pop panics otherwise, matching 
//  treatment of "popping an empty queue" as a programming bug.
func (q *Queue) Pop() cspace.Node {
	if q.IsEmpty() {
		panic("queue: Pop called on an empty queue")
	}
	e := heap.Pop((*pqHeap)(q)).(*entry)
	return e.node
}

// Clear empties the queue, dropping every entry. Used by algorithm's
// deferred Reset.
func (q *Queue) Clear() {
	q.entries = nil
	q.nodeIndex = make(map[cspace.Node]int)
}

// Promote is a testability hook: it forces node to the very top of the
// queue by assigning it a key strictly less than the current minimum.
// The resulting key is not the mathematically correct one, so callers
// must expect the value/rhs/queue invariants to be violated until the
// next Pop. Returns false if node is not currently queued.
func (q *Queue) Promote(node cspace.Node) bool {
	i, ok := q.nodeIndex[node]
	if !ok {
		return false
	}
	newKey := -numeric.Infinity
	if min, hasMin := q.MinKey(); hasMin {
		newKey = min - 1
	}
	q.entries[i].key = newKey
	heap.Fix((*pqHeap)(q), i)
	return true
}

func (q *Queue) remove(node cspace.Node) {
	i, ok := q.nodeIndex[node]
	if !ok {
		return
	}
	heap.Remove((*pqHeap)(q), i)
}

func (q *Queue) nextSeqNo() uint64 {
	q.nextSeq++
	return q.nextSeq
}
