package hufftext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewCodec verifies the wrapper trains a working codec
func TestNewCodec(t *testing.T) {
	c := NewCodec("abcdefghijklmnopqrstuvwxyz .")
	require.NotNil(t, c)

	text := "jason is bored."
	bits := c.Encode(text)
	require.NotEmpty(t, bits)
	require.Equal(t, text, c.Decode(bits))
}

// TestNewCodec_UntrainedSymbols verifies literal passthrough through the wrapper
func TestNewCodec_UntrainedSymbols(t *testing.T) {
	c := NewCodec("kkkkkkadsbbdacddb")

	text := "kad & Jason"
	decoded := c.Decode(c.Encode(text))
	require.Equal(t, text, decoded)
}

// TestCodecID verifies hash generation is deterministic
func TestCodecID(t *testing.T) {
	corpus := "the quick brown fox jumps over the lazy dog"

	id1 := CodecID(corpus)
	id2 := CodecID(corpus)

	require.Equal(t, id1, id2, "CodecID should be deterministic")
	require.NotZero(t, id1, "CodecID should not be zero")

	differentID := CodecID("a different corpus")
	require.NotEqual(t, id1, differentID)
}

// TestCodecID_DistinctFromFingerprint verifies the two identities diverge:
// CodecID hashes the corpus, Fingerprint hashes the derived table.
func TestCodecID_DistinctFromFingerprint(t *testing.T) {
	// Same symbol distribution, different order: identical tables,
	// different corpora.
	a := "aabb"
	b := "abab"

	require.NotEqual(t, CodecID(a), CodecID(b))
	require.Equal(t, NewCodec(a).Fingerprint(), NewCodec(b).Fingerprint())
}
