// Package hufftext provides a character-level Huffman codec that turns text
// into printable '0'/'1' bit-strings and back.
//
// A codec is trained on a sample text: byte frequencies in the sample decide
// the code, with frequent symbols receiving shorter bit-strings. The encoded
// output is itself text (one character per code bit), which keeps it
// printable, diffable and easy to inspect; symbols the codec never saw pass
// through unchanged.
//
// # Core Features
//
//   - Deterministic derivation: the same sample always yields the same code
//   - Prefix-free codes: no assigned bit-string is a prefix of another
//   - Literal passthrough for untrained symbols during encode and decode
//   - Strict decoding that reports dropped input instead of staying silent
//   - 64-bit code-table fingerprints (xxHash64) for pairing encoders with decoders
//   - Corpus-keyed codec caching (CodecCache) with hash collision detection
//   - Code efficiency analysis and compressor baselines via the stats package
//   - Optional compression (None, Zstd, S2, LZ4) for stored corpora and bitstreams
//
// # Basic Usage
//
// Training a codec and round-tripping text:
//
//	import "github.com/arloliu/hufftext"
//
//	// Train on a sample that covers the expected alphabet
//	c := hufftext.NewCodec("abcdefghijklmnopqrstuvwxyz .")
//
//	// Encode produces a '0'/'1' string, one character per code bit
//	bits := c.Encode("jason is bored.")
//
//	// Decode walks the bit-string back to the original text
//	text := c.Decode(bits)
//	fmt.Println(text) // jason is bored.
//
// Symbols outside the training sample survive both directions:
//
//	c := hufftext.NewCodec("kkkkkkadsbbdacddb")
//	bits := c.Encode("kad & Jason")
//	// '&', 'J', 'o', ... appear verbatim between the coded bits
//	text := c.Decode(bits)
//
// Drivers that see the same corpus repeatedly can train once and reuse:
//
//	cache := hufftext.NewCodecCache()
//	c, err := cache.Get(sample) // trains on first use, cached afterwards
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, simplifying the most common use cases. For tree inspection,
// frequency access, strict decoding and fingerprints, use the codec package
// directly; the stats package measures code efficiency and compares the
// codec against general-purpose compressors.
package hufftext

import (
	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/internal/hash"
)

// NewCodec trains a codec on the given sample text.
//
// The sample's byte frequencies determine the code: frequent symbols receive
// shorter bit-strings. Training never fails; an empty sample yields a codec
// whose Encode passes all input through verbatim.
//
// The returned codec is immutable and safe for concurrent use.
//
// Parameters:
//   - sample: Training text whose byte frequencies shape the code
//
// Returns:
//   - *codec.Codec: The trained codec.
//
// Example:
//
//	c := hufftext.NewCodec("the quick brown fox jumps over the lazy dog")
//	bits := c.Encode("hello")
//	text := c.Decode(bits)
func NewCodec(sample string) *codec.Codec {
	return codec.New(sample)
}

// CodecID converts a training corpus to its 64-bit hash identifier.
//
// Hufftext uses xxHash64 to turn corpora into fixed-size IDs so callers can
// cache trained codecs without holding the full sample text as a map key.
//
// The hash function guarantees:
//   - Deterministic: same corpus always produces same output
//   - Collision-resistant: extremely low probability of collisions
//   - Fast: a few ns per short corpus on modern CPUs
//
// Note that CodecID identifies the training text, not the derived code:
// two different corpora can yield identical code tables yet distinct IDs.
// Use codec.Codec.Fingerprint to compare derived tables instead.
//
// Example:
//
//	id := hufftext.CodecID(corpus)
//	if c, ok := cache[id]; ok {
//	    return c
//	}
//	cache[id] = hufftext.NewCodec(corpus)
func CodecID(sample string) uint64 {
	return hash.ID(sample)
}
