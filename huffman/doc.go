// Package huffman implements Huffman tree construction and code-table
// derivation over byte alphabets.
//
// The pipeline has three stages, each usable on its own:
//
//  1. CountBytes scans a training sample into a FrequencyTable.
//  2. Build combines the table into a binary tree whose leaves are the
//     distinct symbols, using a min-heap ordered by weight.
//  3. NewCodeTable walks the tree and assigns each symbol a prefix-free
//     bit-string made of '0' and '1' characters.
//
// # Determinism
//
// Classic Huffman construction leaves ties unspecified; this package pins
// them down so the same sample always produces the same codes:
//
//   - The FrequencyTable keeps symbols in first-appearance order, not map
//     order.
//   - Every tree node carries a creation sequence id. The heap orders by
//     (weight, sequence), so equal-weight nodes pop oldest first.
//   - The first node popped for a combine step becomes the left child.
//
// # Code shape
//
// Codes are strings over the characters '0' and '1' rather than packed bits.
// The traversal seeds the root with "0", which gives the degenerate
// single-symbol tree the code "0" and makes every code at least one
// character long. Codes are prefix-free by construction, so a decoder can
// resolve a concatenated stream left to right without separators.
//
// Most callers will not use this package directly; the codec package wraps
// the three stages behind a single constructor.
package huffman
