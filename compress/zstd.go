package compress

// ZstdCompressor provides Zstandard compression for hufftext payloads.
//
// Zstd favors compression ratio over raw speed, making it the right choice
// for:
//   - Archiving training corpora alongside the codecs trained on them
//   - Cold storage of encoded bitstreams, whose '0'/'1' byte alphabet
//     compresses close to the 8:1 character overhead
//   - Network transmission where bandwidth is limited
//
// Two implementations back this type, selected at build time: the cgo build
// uses the libzstd bindings, and pure-Go builds fall back to
// klauspost/compress/zstd. Both speak the standard Zstandard frame format,
// so payloads interoperate across builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
