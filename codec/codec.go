package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/hufftext/huffman"
	"github.com/arloliu/hufftext/internal/hash"
)

// Codec encodes text into Huffman bit-strings and decodes them back, using a
// prefix-free code derived from a training sample.
//
// All state is built by New and never mutated afterward, so a single Codec
// may be shared across goroutines for concurrent Encode and Decode calls.
type Codec struct {
	freqs       *huffman.FrequencyTable
	root        *huffman.Node
	table       *huffman.CodeTable
	fingerprint uint64
}

// New trains a Codec on the given sample.
//
// The sample's byte frequencies determine the code: frequent symbols receive
// shorter bit-strings. New never fails; an empty sample yields a codec with
// no trained symbols whose Encode passes all input through verbatim.
func New(sample string) *Codec {
	freqs := huffman.CountBytes(sample)
	root := huffman.Build(freqs)
	table := huffman.NewCodeTable(root)

	return &Codec{
		freqs:       freqs,
		root:        root,
		table:       table,
		fingerprint: tableFingerprint(table),
	}
}

// tableFingerprint hashes the table entries in traversal order. Two codecs
// with identical code tables share a fingerprint regardless of how the
// tables were obtained.
func tableFingerprint(table *huffman.CodeTable) uint64 {
	digest := hash.New()
	for _, sym := range table.Symbols() {
		code, _ := table.Code(sym)
		fmt.Fprintf(digest, "%d:%s\n", sym, code)
	}

	return digest.Sum64()
}

// Frequency returns how many times sym occurred in the training sample,
// or 0 for symbols that never appeared.
func (c *Codec) Frequency(sym byte) int {
	return c.freqs.Count(sym)
}

// Freqs returns the training frequency table.
func (c *Codec) Freqs() *huffman.FrequencyTable {
	return c.freqs
}

// Table returns the derived code table.
func (c *Codec) Table() *huffman.CodeTable {
	return c.table
}

// Root returns the root of the Huffman tree, or nil for a codec trained on
// an empty sample.
func (c *Codec) Root() *huffman.Node {
	return c.root
}

// Fingerprint returns a 64-bit identity of the derived code table.
//
// Codecs trained on the same sample always share a fingerprint, so callers
// can use it to pair encoders with decoders or to cache codecs.
func (c *Codec) Fingerprint() uint64 {
	return c.fingerprint
}

// Dump writes a programmer-readable debugging dump of the codec's code
// table to the given writer.
func (c *Codec) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codec{\n")
	fmt.Fprintf(&buf, "\tFingerprint() = %016x\n", c.fingerprint)
	fmt.Fprintf(&buf, "\tsymbols = %d\n", c.table.Len())
	fmt.Fprintf(&buf, "\ttotal = %d\n", c.freqs.Total())
	for _, sym := range c.table.Symbols() {
		code, _ := c.table.Code(sym)
		fmt.Fprintf(&buf, "\tEncodeSymbol(%q) = %s (count %d)\n", sym, code, c.freqs.Count(sym))
	}
	buf.WriteString("}\n")

	return buf.WriteTo(w)
}
