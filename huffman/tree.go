package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Build constructs a Huffman tree from the given frequency table.
//
// Each distinct symbol becomes a leaf weighted by its count, with a sequence
// id taken from its first-appearance position. While more than one node
// remains in the heap, the two lightest nodes are combined under a new
// internal node whose weight is their sum; the node popped first becomes the
// left child, and the combined node takes the next sequence id.
//
// Build never fails: a nil or empty table yields a nil root, and a table
// with a single distinct symbol yields that leaf as the root.
func Build(freqs *FrequencyTable) *Node {
	if freqs == nil || freqs.Len() == 0 {
		return nil
	}

	nodes := &nodeHeap{list: make([]*Node, 0, freqs.Len())}
	seq := 0
	for _, sym := range freqs.order {
		weight := freqs.counts[sym]
		assert.Assertf(weight > 0, "symbol %q has non-positive weight %d", sym, weight)
		nodes.list = append(nodes.list, &Node{symbol: sym, weight: weight, seq: seq, leaf: true})
		seq++
	}
	heap.Init(nodes)

	for nodes.Len() > 1 {
		left, _ := heap.Pop(nodes).(*Node)
		right, _ := heap.Pop(nodes).(*Node)
		parent := &Node{
			left:   left,
			right:  right,
			weight: left.weight + right.weight,
			seq:    seq,
		}
		seq++
		heap.Push(nodes, parent)
	}

	return nodes.list[0]
}
