// Decoding is lenient by default: bytes outside the alphabet are skipped
// and the remaining symbols are interpreted as if the noise were absent.
// Callers that need malformed input surfaced opt into Strict, which is the
// codec's only failure mode.

package base2n

import (
	"errors"
	"slices"
)

// ErrUndecodableSymbol is returned by strict decoding when a byte outside
// the alphabet is encountered.
var ErrUndecodableSymbol = errors.New("base2n: symbol not in alphabet")

type decodeConfig struct {
	foldCase bool
	strict   bool
}

// DecodeOption configures a single decode call.
type DecodeOption func(*decodeConfig)

// FoldCase retries a failed symbol lookup with the opposite-case ASCII
// variant, making decoding case-insensitive against single-case alphabets.
func FoldCase() DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.foldCase = true
	}
}

// Strict aborts decoding with ErrUndecodableSymbol on the first byte that
// is not in the alphabet instead of skipping it.
func Strict() DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.strict = true
	}
}

// DecodedLen returns the maximum number of bytes Decode produces for n
// encoded symbols. Lenient decoding of input containing foreign bytes can
// produce less. Inputs that are not positive return zero.
func (c *Codec) DecodedLen(n int) int {
	if n <= 0 {
		return 0
	}

	return (n*int(c.bits) + 7) / 8
}

// trimPadding strips trailing pad symbols, any number of them including
// zero, before content is interpreted.
func (c *Codec) trimPadding(src []byte) []byte {
	n := len(src)
	for n > 0 && src[n-1] == c.padChar {
		n--
	}

	return src[:n]
}

// decode appends the decoded form of src to dst, the exact mirror of the
// encoder's bit-spanning: each symbol contributes its bits-per-character
// value to the byte under assembly, completed bytes are emitted, and
// leftover high bits carry into the next byte's low bits.
//
// invariants:
//
// - len(src) > 0 and src carries no trailing pad symbols
func (c *Codec) decode(dst, src []byte, cfg decodeConfig) ([]byte, error) {
	bits := c.bits
	last := len(src) - 1

	var cur byte
	var written uint8

	for i := 0; i <= last; i++ {
		v := c.index[src[i]]
		if v == invalidSymbol && cfg.foldCase {
			v = c.index[foldByte(src[i])]
		}
		if v == invalidSymbol {
			if cfg.strict {
				return dst, ErrUndecodableSymbol
			}
			continue
		}

		needed := 8 - written

		switch {
		case needed > bits:
			// not enough bits yet to complete a byte
			cur |= byte(v) << (needed - bits)
			written += bits
		case i != last || c.padRight:
			// completes the byte; surplus low bits either carry
			// over or, on a right-padded final symbol, were
			// injected purely for alignment and are discarded
			cur |= byte(v) >> (bits - needed)
			written = 8
		default:
			// final symbol of a codec without right padding
			// holds the leftover low bits unshifted
			cur |= byte(v)
			written = 8
		}

		if written == 8 || i == last {
			dst = append(dst, cur)

			if i != last {
				// start the next byte with the carried bits
				written = bits - needed
				cur = byte(v) << (8 - written)
			}
		}
	}

	return dst, nil
}

// Decode returns the bytes spelled by src. Trailing pad symbols are
// stripped first; an empty or all-padding input decodes to nil.
//
// By default unrecognized bytes are skipped and decoding is case
// sensitive; see FoldCase and Strict. An error is only possible under
// Strict, and a non-nil error means no usable result.
func (c *Codec) Decode(src []byte, opts ...DecodeOption) ([]byte, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	src = c.trimPadding(src)
	if len(src) == 0 {
		return nil, nil
	}

	dst, err := c.decode(make([]byte, 0, c.DecodedLen(len(src))), src, cfg)
	if err != nil {
		return nil, err
	}

	return dst, nil
}

// DecodeString is Decode for string input.
func (c *Codec) DecodeString(src string, opts ...DecodeOption) ([]byte, error) {
	return c.Decode([]byte(src), opts...)
}

// AppendDecode returns the decoded form of src appended to dst. If src is
// empty after pad stripping, dst is returned as-is. On error dst is
// returned unchanged.
func (c *Codec) AppendDecode(dst, src []byte, opts ...DecodeOption) ([]byte, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	src = c.trimPadding(src)
	if len(src) == 0 {
		return dst, nil
	}

	grown := slices.Grow(dst, c.DecodedLen(len(src)))

	out, err := c.decode(grown, src, cfg)
	if err != nil {
		return dst, err
	}

	return out, nil
}
