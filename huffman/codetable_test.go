package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewCodeTable_Empty(t *testing.T) {
	ct := NewCodeTable(nil)
	require.NotNil(t, ct)

	assert.Equal(t, 0, ct.Len())
	assert.Empty(t, ct.Symbols())
	assert.Equal(t, 0, ct.MinCodeLen())
	assert.Equal(t, 0, ct.MaxCodeLen())

	_, ok := ct.Code('a')
	assert.False(t, ok)
	_, ok = ct.Symbol("0")
	assert.False(t, ok)
}

func TestNewCodeTable_SingleSymbol(t *testing.T) {
	ct := NewCodeTable(Build(CountBytes("aaaa")))

	code, ok := ct.Code('a')
	require.True(t, ok)
	assert.Equal(t, "0", code, "degenerate tree must yield the seed code")

	sym, ok := ct.Symbol("0")
	require.True(t, ok)
	assert.Equal(t, byte('a'), sym)

	assert.Equal(t, 1, ct.Len())
	assert.Equal(t, 1, ct.MinCodeLen())
	assert.Equal(t, 1, ct.MaxCodeLen())
}

func TestNewCodeTable_TwoSymbols(t *testing.T) {
	// a:3 b:1; b pops first and goes left.
	ct := NewCodeTable(Build(CountBytes("aaab")))

	codeA, ok := ct.Code('a')
	require.True(t, ok)
	assert.Equal(t, "01", codeA)

	codeB, ok := ct.Code('b')
	require.True(t, ok)
	assert.Equal(t, "00", codeB)
}

// TestNewCodeTable_HandChecked pins the full table for "kkkkkkadsbbdacddb";
// see TestBuild_Shape for the combine steps that produce it.
func TestNewCodeTable_HandChecked(t *testing.T) {
	ct := NewCodeTable(Build(CountBytes("kkkkkkadsbbdacddb")))

	want := map[byte]string{
		'k': "011",
		'a': "0100",
		'd': "001",
		's': "01010",
		'b': "000",
		'c': "01011",
	}
	require.Equal(t, len(want), ct.Len())
	for sym, wantCode := range want {
		code, ok := ct.Code(sym)
		require.True(t, ok, "symbol %q missing from table", sym)
		assert.Equal(t, wantCode, code, "symbol %q", sym)

		back, ok := ct.Symbol(wantCode)
		require.True(t, ok)
		assert.Equal(t, sym, back)
	}

	assert.Equal(t, 3, ct.MinCodeLen())
	assert.Equal(t, 5, ct.MaxCodeLen())
}

func TestCodeTable_Symbols_TraversalOrder(t *testing.T) {
	ct := NewCodeTable(Build(CountBytes("kkkkkkadsbbdacddb")))

	// Leaves in left-to-right order: b(000) d(001) a(0100) s(01010) c(01011) k(011).
	assert.Equal(t, []byte("bdasck"), ct.Symbols())
}

func TestCodeTable_UnknownLookups(t *testing.T) {
	ct := NewCodeTable(Build(CountBytes("aaab")))

	_, ok := ct.Code('z')
	assert.False(t, ok)

	_, ok = ct.Symbol("0")
	assert.False(t, ok, "\"0\" is a strict prefix here, not a code")
	_, ok = ct.Symbol("")
	assert.False(t, ok, "the empty string is never a code")
}

// assertCodeInvariants checks the structural guarantees every derived table
// must satisfy: one non-empty all-bits code per symbol, no duplicates, no
// code a prefix of another, and consistent reverse lookups.
func assertCodeInvariants(t assert.TestingT, ft *FrequencyTable, ct *CodeTable) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	if !assert.Equal(t, ft.Len(), ct.Len()) {
		return false
	}

	codes := make([]string, 0, ft.Len())
	for _, sym := range ft.Symbols() {
		code, ok := ct.Code(sym)
		if !assert.True(t, ok, "symbol %q has no code", sym) {
			return false
		}
		if !assert.NotEmpty(t, code, "symbol %q has an empty code", sym) {
			return false
		}
		if !assert.Equal(t, "", strings.Trim(code, "01"), "code %q contains non-bit characters", code) {
			return false
		}
		if !assert.NotContains(t, codes, code, "duplicate code %q", code) {
			return false
		}

		back, ok := ct.Symbol(code)
		if !assert.True(t, ok) || !assert.Equal(t, sym, back, "reverse lookup of %q", code) {
			return false
		}
		codes = append(codes, code)
	}

	// No code may be a prefix of another.
	for i, left := range codes {
		for j, right := range codes {
			if i == j {
				continue
			}
			if !assert.False(t, strings.HasPrefix(left, right), "%q is a prefix of %q", right, left) {
				return false
			}
		}
	}

	return true
}

func TestCodeTable_Invariants(t *testing.T) {
	samples := []string{
		"aaaa",
		"aaab",
		"kkkkkkadsbbdacddb",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqurstuvwxyz.",
		"mississippi",
	}
	for _, sample := range samples {
		ft := CountBytes(sample)
		assertCodeInvariants(t, ft, NewCodeTable(Build(ft)))
	}
}

func TestCodeTable_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sample := rapid.String().Draw(t, "sample")
		ft := CountBytes(sample)
		ct := NewCodeTable(Build(ft))

		assertCodeInvariants(t, ft, ct)
	})
}

// TestCodeTable_WeightMonotonicity checks that a strictly more frequent
// symbol never receives a longer code.
func TestCodeTable_WeightMonotonicity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sample := rapid.StringMatching(`[a-h]{2,64}`).Draw(t, "sample")
		ft := CountBytes(sample)
		ct := NewCodeTable(Build(ft))

		syms := ft.Symbols()
		for _, x := range syms {
			for _, y := range syms {
				if ft.Count(x) > ft.Count(y) {
					codeX, _ := ct.Code(x)
					codeY, _ := ct.Code(y)
					assert.LessOrEqual(t, len(codeX), len(codeY),
						"symbol %q (count %d) has a longer code than %q (count %d)",
						x, ft.Count(x), y, ft.Count(y))
				}
			}
		}
	})
}
