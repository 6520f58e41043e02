package stats

import (
	"github.com/benbjohnson/clock"

	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/internal/options"
)

// compareConfig holds configuration for Compare.
type compareConfig struct {
	compressions []format.CompressionType
	clock        clock.Clock
}

// defaultCompareConfig returns the default config (all real compressors,
// wall clock).
func defaultCompareConfig() *compareConfig {
	return &compareConfig{
		compressions: []format.CompressionType{
			format.CompressionZstd,
			format.CompressionS2,
			format.CompressionLZ4,
		},
		clock: clock.New(),
	}
}

// Option is a functional option for Compare.
type Option = options.Option[*compareConfig]

// WithCompressions selects which generic compressors run as baselines,
// replacing the default set.
func WithCompressions(types ...format.CompressionType) Option {
	return options.NoError(func(cfg *compareConfig) {
		cfg.compressions = types
	})
}

// WithClock sets the clock used for baseline timing measurements.
func WithClock(clk clock.Clock) Option {
	return options.NoError(func(cfg *compareConfig) {
		cfg.clock = clk
	})
}
