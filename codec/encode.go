package codec

import "github.com/arloliu/hufftext/internal/pool"

// EncodeSymbol returns the bit-string assigned to sym, or the symbol itself
// as a one-byte string if it never appeared in the training sample (literal
// passthrough).
func (c *Codec) EncodeSymbol(sym byte) string {
	if code, ok := c.table.Code(sym); ok {
		return code
	}

	return string([]byte{sym})
}

// Encode encodes text symbol by symbol, concatenating the bit-string of
// every trained symbol and passing untrained symbols through verbatim.
//
// Output mixing literals with bits decodes lossily; see Decode for the exact
// rules and DecodeStrict for detecting the loss. Text entirely over the
// trained alphabet always round-trips: Decode(Encode(text)) == text.
func (c *Codec) Encode(text string) string {
	if len(text) == 0 {
		return ""
	}

	buf := pool.GetBitstreamBuffer()
	defer pool.PutBitstreamBuffer(buf)

	perSym := c.table.MaxCodeLen()
	if perSym == 0 {
		perSym = 1 // untrained codec, all literals
	}
	buf.Grow(len(text) * perSym)

	for i := 0; i < len(text); i++ {
		if code, ok := c.table.Code(text[i]); ok {
			buf.MustWriteString(code)
		} else {
			buf.MustWriteByte(text[i])
		}
	}

	return buf.String()
}
