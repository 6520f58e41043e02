package stats

import (
	"fmt"
	"math"

	"github.com/arloliu/hufftext/codec"
)

// Summary describes how well a codec's code table fits the distribution it
// was trained on.
//
// Fields:
//   - DistinctSymbols: Number of distinct byte symbols in the training sample
//   - TotalSymbols: Total number of bytes in the training sample
//   - Entropy: Shannon entropy of the training distribution, in bits per symbol
//   - MeanCodeLen: Expected code length in bits per symbol, weighted by training frequency
//   - MinCodeLen: Length of the shortest assigned code
//   - MaxCodeLen: Length of the longest assigned code
//   - Efficiency: Entropy divided by MeanCodeLen (0..1, higher is better)
type Summary struct {
	// DistinctSymbols is the number of distinct trained symbols.
	DistinctSymbols int
	// TotalSymbols is the total training sample length in bytes.
	TotalSymbols int
	// Entropy is the Shannon entropy of the training distribution (bits/symbol).
	Entropy float64
	// MeanCodeLen is the frequency-weighted mean code length (bits/symbol).
	MeanCodeLen float64
	// MinCodeLen is the shortest assigned code length.
	MinCodeLen int
	// MaxCodeLen is the longest assigned code length.
	MaxCodeLen int
	// Efficiency is Entropy / MeanCodeLen. A value of 1.0 means the code
	// meets the Shannon bound exactly; 0 for degenerate distributions.
	Efficiency float64
}

// String returns a string representation of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{Symbols: %d/%d, Entropy: %.4f, MeanCodeLen: %.4f, Efficiency: %.2f%%}",
		s.DistinctSymbols, s.TotalSymbols, s.Entropy, s.MeanCodeLen, s.Efficiency*100)
}

// Summarize computes entropy and code-length statistics for a trained codec.
//
// The Shannon entropy is a lower bound on the mean code length of any
// prefix-free code over the training distribution, so Efficiency never
// exceeds 1.0. A codec trained on an empty sample yields a zero Summary.
//
// Example:
//
//	c := codec.New("abcdefghijklmnopqrstuvwxyz ")
//	s := stats.Summarize(c)
//	fmt.Printf("%.2f bits/symbol over %d symbols\n", s.MeanCodeLen, s.DistinctSymbols)
func Summarize(c *codec.Codec) Summary {
	freqs := c.Freqs()
	table := c.Table()

	summary := Summary{
		DistinctSymbols: freqs.Len(),
		TotalSymbols:    freqs.Total(),
		MinCodeLen:      table.MinCodeLen(),
		MaxCodeLen:      table.MaxCodeLen(),
	}
	if summary.TotalSymbols == 0 {
		return summary
	}

	total := float64(summary.TotalSymbols)
	for _, sym := range freqs.Symbols() {
		p := float64(freqs.Count(sym)) / total
		summary.Entropy -= p * math.Log2(p)

		code, ok := table.Code(sym)
		if ok {
			summary.MeanCodeLen += p * float64(len(code))
		}
	}

	if summary.MeanCodeLen > 0 {
		summary.Efficiency = summary.Entropy / summary.MeanCodeLen
	}

	return summary
}
