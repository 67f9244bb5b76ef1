package queue

// pqHeap is Queue viewed through container/heap.Interface. Keeping the
// heap methods on a distinct named type (rather than on *Queue itself)
// avoids a name collision between heap.Interface's Pop() any and
// Queue's own, more useful Pop() cspace.Node.
type pqHeap Queue

func (h *pqHeap) Len() int { return len(h.entries) }

func (h *pqHeap) Less(i, j int) bool {
	if h.entries[i].key != h.entries[j].key {
		return h.entries[i].key < h.entries[j].key
	}
	return h.entries[i].seq < h.entries[j].seq
}

func (h *pqHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.nodeIndex[h.entries[i].node] = i
	h.nodeIndex[h.entries[j].node] = j
}

func (h *pqHeap) Push(x interface{}) {
	e := x.(*entry)
	h.nodeIndex[e.node] = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *pqHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	delete(h.nodeIndex, e.node)
	h.entries = old[:n-1]
	return e
}
