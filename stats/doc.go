// Package stats measures how well a trained hufftext codec fits its data.
//
// The package answers two questions about a codec: how close its code comes
// to the information-theoretic optimum for the distribution it was trained
// on, and how its character-per-bit output stacks up against general-purpose
// compressors running over the same text.
//
// # Code Efficiency
//
// Summarize inspects a codec's training distribution and code table:
//
//	c := hufftext.NewCodec(sample)
//	s := stats.Summarize(c)
//	fmt.Printf("entropy=%.3f mean=%.3f efficiency=%.1f%%\n",
//	    s.Entropy, s.MeanCodeLen, s.Efficiency*100)
//
// Entropy is a lower bound on the mean length of any prefix-free code, so
// Efficiency (entropy divided by mean code length) never exceeds 1.0.
//
// # Baseline Comparison
//
// Compare encodes a text with the codec and runs generic compressors over
// the same text for reference:
//
//	report, err := stats.Compare(c, text)
//	if err != nil {
//	    log.Printf("some baselines failed: %v", err)
//	}
//	fmt.Printf("codec: %d chars (%dB packed)\n", report.EncodedLen, report.PackedEstimate)
//	for _, b := range report.Baselines {
//	    fmt.Printf("%s: %dB (%.1f%%)\n", b.Algorithm, b.CompressedSize, b.CompressionRatio()*100)
//	}
//
// The codec emits one '0'/'1' character per code bit, so EncodedLen counts
// characters and PackedEstimate is the arithmetic byte size those characters
// would occupy as real bits. Baseline sizes are actual compressed bytes.
//
// Baselines default to Zstd, S2 and LZ4; WithCompressions overrides the set
// and WithClock injects a mock clock for deterministic timing in tests.
package stats
