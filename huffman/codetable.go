package huffman

import "github.com/chronos-tachyon/assert"

// CodeTable holds both directions of a derived Huffman code: symbol to
// bit-string and bit-string to symbol.
//
// Codes are strings over the characters '0' and '1', at least one character
// long, and prefix-free: no code is a prefix of another. A CodeTable is
// derived once from a tree and never mutated afterward.
type CodeTable struct {
	codes   map[byte]string
	symbols map[string]byte
	order   []byte
	minLen  int
	maxLen  int
}

// NewCodeTable derives the code table for the tree rooted at root.
//
// The traversal starts at the root with the accumulated bit-string "0";
// descending appends '0' going left and '1' going right, and each leaf
// records its accumulated string in both directions. The leading "0" seed
// gives the degenerate single-leaf tree the code "0". A nil root yields an
// empty table.
func NewCodeTable(root *Node) *CodeTable {
	ct := &CodeTable{
		codes:   make(map[byte]string),
		symbols: make(map[string]byte),
	}
	if root == nil {
		return ct
	}

	ct.walk(root, "0")

	return ct
}

func (ct *CodeTable) walk(n *Node, current string) {
	if n.leaf {
		ct.codes[n.symbol] = current
		ct.symbols[current] = n.symbol
		ct.order = append(ct.order, n.symbol)
		if ct.minLen == 0 || len(current) < ct.minLen {
			ct.minLen = len(current)
		}
		if len(current) > ct.maxLen {
			ct.maxLen = len(current)
		}

		return
	}

	assert.Assertf(n.left != nil && n.right != nil,
		"internal node (weight %d, seq %d) missing a child", n.weight, n.seq)

	ct.walk(n.left, current+"0")
	ct.walk(n.right, current+"1")
}

// Code returns the bit-string assigned to sym. The second result is false if
// the symbol was not part of the training sample.
func (ct *CodeTable) Code(sym byte) (string, bool) {
	code, ok := ct.codes[sym]
	return code, ok
}

// Symbol returns the symbol assigned to the given bit-string. The second
// result is false if no symbol carries exactly that code.
func (ct *CodeTable) Symbol(code string) (byte, bool) {
	sym, ok := ct.symbols[code]
	return sym, ok
}

// Len returns the number of coded symbols.
func (ct *CodeTable) Len() int {
	return len(ct.order)
}

// Symbols returns the coded symbols in traversal order, which is also the
// lexicographic order of their codes. The returned slice is a copy.
func (ct *CodeTable) Symbols() []byte {
	syms := make([]byte, len(ct.order))
	copy(syms, ct.order)

	return syms
}

// MinCodeLen returns the length of the shortest code, or 0 for an empty
// table. Lengths are metadata for analysis; decoding never consults them.
func (ct *CodeTable) MinCodeLen() int {
	return ct.minLen
}

// MaxCodeLen returns the length of the longest code, or 0 for an empty
// table.
func (ct *CodeTable) MaxCodeLen() int {
	return ct.maxLen
}
