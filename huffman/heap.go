package huffman

import "container/heap"

// nodeHeap is a min-heap of tree nodes ordered by weight, with creation
// sequence as the tie breaker. Equal-weight nodes therefore pop in creation
// order, which keeps tree construction deterministic.
type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}

	return a.seq < b.seq
}

func (h *nodeHeap) Push(x any) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() any {
	last := len(h.list) - 1
	n := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]

	return n
}

var _ heap.Interface = (*nodeHeap)(nil)
