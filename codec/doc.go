// Package codec provides the user-facing Huffman text codec.
//
// A Codec is trained once on a sample string and then encodes text into
// bit-strings ('0'/'1' characters) and decodes such bit-strings back into
// text. Construction never fails; degenerate inputs produce degenerate but
// well-defined codecs.
//
// # Basic Usage
//
//	c := codec.New("kkkkkkadsbbdacddb")
//
//	bits := c.Encode("kad")          // "0110100001"
//	text := c.Decode(bits)           // "kad"
//
//	text, err := c.DecodeStrict(bits) // same, but fails on dropped bits
//
// # Literal passthrough
//
// Symbols that never appeared in the training sample have no code. Encode
// emits them verbatim, and Decode emits any non-bit byte it meets verbatim.
// The resulting mixed stream is convenient for mostly-trained text, but it
// is lossy around the edges: a literal discards whatever partial code
// preceded it, and Decode drops unmatched trailing bits. DecodeStrict turns
// both loss cases into errs.ErrIncompleteCode.
//
// # Sharing
//
// A Codec is immutable after New returns and safe for concurrent use by
// multiple goroutines without locking. Fingerprint gives a stable 64-bit
// identity of the derived code table, useful for pairing an encoder with the
// decoder trained on the same sample.
package codec
