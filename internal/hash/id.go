// Package hash provides the 64-bit identity hash used to fingerprint codecs
// and to key them by training corpus.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// The same input always yields the same 64-bit ID, so callers can use it to
// pair encoders with decoders or to cache codecs by training corpus.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// New returns a streaming xxHash64 digest for fingerprinting multi-part
// inputs without concatenating them first.
func New() *xxhash.Digest {
	return xxhash.New()
}
