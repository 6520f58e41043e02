package codec

import (
	"fmt"

	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/internal/pool"
)

// DecodeSymbol resolves a single code or literal.
//
// If the table assigns a symbol to code, that symbol is returned. Otherwise
// a one-character input is returned as itself, mirroring the literal
// passthrough of EncodeSymbol. The second result is false when the input is
// neither a known code nor a single character.
func (c *Codec) DecodeSymbol(code string) (byte, bool) {
	if sym, ok := c.table.Symbol(code); ok {
		return sym, true
	}
	if len(code) == 1 {
		return code[0], true
	}

	return 0, false
}

// Decode scans bits left to right and rebuilds the text encoded by Encode.
//
// The scan keeps a growing window over the input. A byte other than '0' or
// '1' is emitted literally and the window restarts after it; a window
// matching a code emits that code's symbol and restarts; otherwise the
// window grows by one byte. Codes are prefix-free, so the first match is
// always the right one.
//
// Decode is total but lossy on malformed input: bits pending when a literal
// arrives, and unmatched bits at the end of the input, are discarded
// silently. Use DecodeStrict when that loss must be detected.
func (c *Codec) Decode(bits string) string {
	text, _ := c.scan(bits, false)
	return text
}

// DecodeStrict decodes bits exactly like Decode but fails instead of
// discarding unresolved bits.
//
// Both loss cases of the scan return an error wrapping
// errs.ErrIncompleteCode: a partial code cut short by a literal character,
// and a non-empty window left over when the input ends. Input that carries
// no such loss returns exactly what Decode returns.
func (c *Codec) DecodeStrict(bits string) (string, error) {
	return c.scan(bits, true)
}

// scan implements the shared decode loop. In strict mode the two loss sites
// fail; otherwise they drop the pending window, matching the lossy contract
// of Decode.
func (c *Codec) scan(bits string, strict bool) (string, error) {
	out := pool.GetTextBuffer()
	defer pool.PutTextBuffer(out)

	i, j := 0, 0
	for j <= len(bits) {
		if j > 0 && bits[j-1] != '0' && bits[j-1] != '1' {
			if strict && i < j-1 {
				return "", fmt.Errorf("%w: %q dropped before literal %q at offset %d",
					errs.ErrIncompleteCode, bits[i:j-1], bits[j-1], j-1)
			}
			out.MustWriteByte(bits[j-1])
			i = j
		}
		if sym, ok := c.table.Symbol(bits[i:j]); ok {
			out.MustWriteByte(sym)
			i = j
		} else {
			j++
		}
	}

	if strict && i < len(bits) {
		return "", fmt.Errorf("%w: trailing fragment %q at offset %d",
			errs.ErrIncompleteCode, bits[i:], i)
	}

	return out.String(), nil
}
