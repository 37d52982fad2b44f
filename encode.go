package base2n

import (
	"slices"
)

// EncodedLen returns the number of symbols Encode produces for n source
// bytes, including any trailing group padding. Inputs that are not positive
// return zero.
func (c *Codec) EncodedLen(n int) int {
	if n <= 0 {
		return 0
	}

	chars := (n*8 + int(c.bits) - 1) / int(c.bits)
	if c.padGroup {
		if rem := chars % c.groupChars; rem != 0 {
			chars += c.groupChars - rem
		}
	}

	return chars
}

// encode fills dst with the encoded form of src followed by any configured
// group padding.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) == EncodedLen(len(src))
func (c *Codec) encode(dst, src []byte) {
	bits := c.bits
	n := len(src)
	total := (n*8 + int(bits) - 1) / int(bits)

	var byteIdx int
	var bitIdx uint8

	di := 0
	for ; di < total; di++ {
		var v byte

		if bitIdx+bits <= 8 {
			// the whole window sits inside the current byte
			v = (src[byteIdx] << bitIdx) >> (8 - bits)

			bitIdx += bits
			if bitIdx == 8 {
				bitIdx = 0
				byteIdx++
			}
		} else {
			// window spans the byte boundary: low bits of the
			// current byte joined with high bits of the next
			have := 8 - bitIdx
			need := bits - have

			v = (src[byteIdx] << bitIdx) >> bitIdx

			byteIdx++
			if byteIdx < n {
				v = v<<need | src[byteIdx]>>(8-need)
				bitIdx = need
			} else {
				// final partial group, `have` valid bits
				if c.padRight {
					v <<= need
				}
			}
		}

		dst[di] = c.alphabet[v]
	}

	for ; di < len(dst); di++ {
		dst[di] = c.padChar
	}
}

// Encode returns nil if src is empty, otherwise it returns the encoded
// form of src. Encode is total: it cannot fail for any input.
func (c *Codec) Encode(src []byte) []byte {
	n := c.EncodedLen(len(src))
	if n == 0 {
		return nil
	}

	dst := make([]byte, n)
	c.encode(dst, src)

	return dst
}

// EncodeToString returns "" if src is empty, otherwise it returns the
// encoded form of src as a string.
func (c *Codec) EncodeToString(src []byte) string {
	n := c.EncodedLen(len(src))
	if n == 0 {
		return ""
	}

	dst := make([]byte, n)
	c.encode(dst, src)

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst if src is
// not empty. If src is empty dst is returned as-is.
func (c *Codec) AppendEncode(dst, src []byte) []byte {
	n := c.EncodedLen(len(src))
	if n == 0 {
		return dst
	}

	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	c.encode(dst[orig:], src)

	return dst
}
