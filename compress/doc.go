// Package compress provides compression and decompression codecs for hufftext payloads.
//
// Huffman coding in this module deliberately keeps its output as '0'/'1'
// characters rather than packed bits, so stored bitstreams carry an 8x
// character overhead. This package is the storage answer to that overhead:
// generic compressors reclaim most of it without touching the codec's
// semantics, and the same codecs also archive training corpora.
//
// # Overview
//
// Payloads move through two independent stages:
//
//  1. **Coding**: the codec package turns text into a '0'/'1' bitstream
//  2. **Compression**: this package shrinks the bitstream (or a raw corpus)
//     for storage or transmission
//
// The second stage supports multiple algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Implementations are obtained through the factories:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	compressed, _ := codec.Compress([]byte(bits))
//	original, _ := codec.Decompress(compressed)
//
// # Algorithm Selection Guide
//
// **Choose based on workload**:
//
// | Workload Type        | Recommended | Reason                         |
// |----------------------|-------------|--------------------------------|
// | Archival corpora     | Zstd        | Best compression ratio         |
// | Hot-path bitstreams  | S2          | Balanced speed and compression |
// | Read-heavy storage   | LZ4         | Fastest decompression          |
// | Tiny payloads        | None        | No compression overhead        |
//
// Two-symbol bitstreams compress dramatically under every algorithm; the
// ranking above mostly matters for raw text corpora. The stats package can
// measure all of them against the Huffman coding itself for a concrete
// corpus.
//
// # Build Variants
//
// Zstd has two implementations selected by build tags: cgo builds bind
// libzstd (valyala/gozstd) for throughput, and pure-Go builds use
// klauspost/compress/zstd. Both emit standard Zstandard frames and
// interoperate freely.
//
// # Thread Safety
//
// All codecs in this package are stateless values whose internal pools are
// safe for concurrent use; a single codec may be shared across goroutines.
package compress
