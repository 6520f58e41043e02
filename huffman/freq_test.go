package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountBytes_Basic(t *testing.T) {
	ft := CountBytes("kkkkkkadsbbdacddb")
	require.NotNil(t, ft)

	assert.Equal(t, 6, ft.Count('k'))
	assert.Equal(t, 2, ft.Count('a'))
	assert.Equal(t, 4, ft.Count('d'))
	assert.Equal(t, 1, ft.Count('s'))
	assert.Equal(t, 3, ft.Count('b'))
	assert.Equal(t, 1, ft.Count('c'))

	assert.Equal(t, 6, ft.Len())
	assert.Equal(t, 17, ft.Total())
}

func TestCountBytes_FirstAppearanceOrder(t *testing.T) {
	ft := CountBytes("kkkkkkadsbbdacddb")
	assert.Equal(t, []byte("kadsbc"), ft.Symbols())

	// Same multiset of bytes, different arrival order.
	ft = CountBytes("bkkkkkkadsbdacddb")
	assert.Equal(t, []byte("bkadsc"), ft.Symbols())
}

func TestCountBytes_Empty(t *testing.T) {
	ft := CountBytes("")
	require.NotNil(t, ft)

	assert.Equal(t, 0, ft.Len())
	assert.Equal(t, 0, ft.Total())
	assert.Empty(t, ft.Symbols())
	assert.Equal(t, 0, ft.Count('a'))
}

func TestCountBytes_SingleSymbol(t *testing.T) {
	ft := CountBytes("aaaa")

	assert.Equal(t, 1, ft.Len())
	assert.Equal(t, 4, ft.Total())
	assert.Equal(t, 4, ft.Count('a'))
	assert.Equal(t, []byte{'a'}, ft.Symbols())
}

func TestCountBytes_CountsBytesNotRunes(t *testing.T) {
	// "é" is the two bytes 0xC3 0xA9 in UTF-8; each byte counts separately.
	ft := CountBytes("héllo")

	assert.Equal(t, 5, ft.Len())
	assert.Equal(t, 6, ft.Total())
	assert.Equal(t, 1, ft.Count(0xC3))
	assert.Equal(t, 1, ft.Count(0xA9))
	assert.Equal(t, 2, ft.Count('l'))
}

func TestFrequencyTable_Count_Absent(t *testing.T) {
	ft := CountBytes("abc")
	assert.Equal(t, 0, ft.Count('z'))
	assert.Equal(t, 0, ft.Count(0x00))
}

func TestFrequencyTable_Symbols_ReturnsCopy(t *testing.T) {
	ft := CountBytes("abc")

	syms := ft.Symbols()
	syms[0] = 'z'

	assert.Equal(t, []byte("abc"), ft.Symbols(), "mutating the returned slice must not affect the table")
}
