package huffman

// Node is a single node of a Huffman tree.
//
// A leaf carries one symbol; an internal node carries the combined weight of
// its two subtrees. Nodes are immutable once Build returns, so a tree can be
// shared across goroutines freely.
type Node struct {
	left   *Node
	right  *Node
	symbol byte
	weight int
	seq    int
	leaf   bool
}

// Leaf reports whether n is a leaf carrying a symbol.
func (n *Node) Leaf() bool {
	return n.leaf
}

// Symbol returns the symbol carried by a leaf node.
// For internal nodes the result is meaningless; check Leaf first.
func (n *Node) Symbol() byte {
	return n.symbol
}

// Weight returns the node's weight: a leaf's training count, or the sum of
// the children's weights for an internal node.
func (n *Node) Weight() int {
	return n.weight
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}
