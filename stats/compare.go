package stats

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/compress"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/internal/options"
)

// Report holds the outcome of running a codec and a set of generic
// compressors over the same text.
//
// The codec side reports character counts: each trained symbol in the input
// contributes its code length in '0'/'1' characters, and PackedEstimate is
// the byte size that output would occupy if every character were packed into
// a real bit. The baseline side reports actual compressed byte sizes.
type Report struct {
	// OriginalSize is the input text length in bytes.
	OriginalSize int
	// EncodedLen is the length of the codec output in characters. For text
	// made entirely of trained symbols, every character is one bit.
	EncodedLen int
	// PackedEstimate is ceil(EncodedLen / 8), the would-be packed byte size.
	PackedEstimate int
	// Baselines holds one entry per generic compressor that ran successfully,
	// in the order the compressors were configured.
	Baselines []compress.CompressionStats
}

// String returns a string representation of the report.
func (r *Report) String() string {
	return fmt.Sprintf("Report{Original: %dB, Encoded: %d chars, Packed: %dB, Baselines: %d}",
		r.OriginalSize, r.EncodedLen, r.PackedEstimate, len(r.Baselines))
}

// Compare encodes text with the codec and runs the configured generic
// compressors over the same text as baselines.
//
// By default the baselines are Zstd, S2 and LZ4; override the set with
// WithCompressions. Wall time per baseline is measured through the
// configured clock (WithClock injects a mock in tests).
//
// The returned report always covers the baselines that succeeded. Baseline
// failures do not abort the comparison; they aggregate into the returned
// error, so both results may be non-nil at once.
//
// Returns errs.ErrEmptyText when text is empty: there is nothing to measure.
func Compare(c *codec.Codec, text string, opts ...Option) (*Report, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("%w: nothing to measure", errs.ErrEmptyText)
	}

	config := defaultCompareConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	encoded := c.Encode(text)
	report := &Report{
		OriginalSize:   len(text),
		EncodedLen:     len(encoded),
		PackedEstimate: (len(encoded) + 7) / 8,
	}

	data := []byte(text)

	var failures error
	for _, ct := range config.compressions {
		comp, err := compress.GetCodec(ct)
		if err != nil {
			failures = multierr.Append(failures, err)
			continue
		}

		start := config.clock.Now()
		compressed, err := comp.Compress(data)
		compressTime := config.clock.Since(start)
		if err != nil {
			failures = multierr.Append(failures, fmt.Errorf("%s compression failed: %w", ct, err))
			continue
		}

		start = config.clock.Now()
		_, err = comp.Decompress(compressed)
		decompressTime := config.clock.Since(start)
		if err != nil {
			failures = multierr.Append(failures, fmt.Errorf("%s decompression failed: %w", ct, err))
			continue
		}

		report.Baselines = append(report.Baselines, compress.CompressionStats{
			Algorithm:           ct,
			OriginalSize:        int64(len(data)),
			CompressedSize:      int64(len(compressed)),
			CompressionTimeNs:   compressTime.Nanoseconds(),
			DecompressionTimeNs: decompressTime.Nanoseconds(),
		})
	}

	return report, failures
}
