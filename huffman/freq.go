package huffman

// FrequencyTable records how often each byte occurs in a training sample,
// along with the order in which distinct bytes first appeared.
//
// The first-appearance order matters: it seeds the tie-breaking sequence ids
// used by Build, so it is carried explicitly instead of relying on Go's
// randomized map iteration. A FrequencyTable is built once by CountBytes and
// never mutated afterward.
type FrequencyTable struct {
	counts map[byte]int
	order  []byte
	total  int
}

// CountBytes builds a FrequencyTable from the given training sample.
//
// Each distinct byte of the sample gets a positive count; bytes absent from
// the sample are simply not present in the table. An empty sample yields an
// empty table. CountBytes never fails.
//
// The sample is treated as raw bytes, not runes: a multi-byte UTF-8 sequence
// contributes one count per byte.
func CountBytes(sample string) *FrequencyTable {
	ft := &FrequencyTable{
		counts: make(map[byte]int, min(len(sample), 256)),
		total:  len(sample),
	}

	for i := 0; i < len(sample); i++ {
		sym := sample[i]
		if _, seen := ft.counts[sym]; !seen {
			ft.order = append(ft.order, sym)
		}
		ft.counts[sym]++
	}

	return ft
}

// Count returns the number of occurrences of sym in the training sample,
// or 0 if the symbol never appeared.
func (ft *FrequencyTable) Count(sym byte) int {
	return ft.counts[sym]
}

// Symbols returns the distinct symbols in first-appearance order.
// The returned slice is a copy; mutating it does not affect the table.
func (ft *FrequencyTable) Symbols() []byte {
	syms := make([]byte, len(ft.order))
	copy(syms, ft.order)

	return syms
}

// Len returns the number of distinct symbols in the table.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Total returns the length of the training sample, i.e. the sum of all
// counts.
func (ft *FrequencyTable) Total() int {
	return ft.total
}
