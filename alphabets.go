package base2n

// Well-known alphabets. Any string of at least two distinct single-byte
// symbols works with WithAlphabet; these cover the encodings callers reach
// for most often.
const (
	// DefaultAlphabet is substituted when a configured alphabet has
	// fewer than two symbols. 66 symbols, so any bit width up to 6 is
	// satisfiable without clamping.
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/-_"

	// HexAlphabet is lowercase base16.
	HexAlphabet = "0123456789abcdef"

	// Base32Alphabet is the RFC 4648 base32 alphabet.
	Base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	// Base32HexAlphabet is the RFC 4648 base32hex alphabet, which sorts
	// encoded text in the same order as the raw bytes.
	Base32HexAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

	// CrockfordAlphabet is Douglas Crockford's base32 alphabet, which
	// drops I, L, O and U to avoid misreading.
	CrockfordAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// Base64Alphabet is the standard RFC 4648 base64 alphabet.
	Base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// Base64URLAlphabet is the URL and filename safe base64 alphabet.
	Base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// NewHex returns a 4-bit codec producing lowercase base16. Four bits divide
// a byte evenly, so hex never needs bit or group padding.
func NewHex() *Codec {
	return New(4, WithAlphabet(HexAlphabet))
}

// NewBase32 returns a 5-bit codec compatible with RFC 4648 base32,
// '='-padded to 8-symbol groups.
func NewBase32() *Codec {
	return New(5,
		WithAlphabet(Base32Alphabet),
		WithRightPadFinalBits(),
		WithPadFinalGroup(),
	)
}

// NewBase32Hex returns a 5-bit codec compatible with RFC 4648 base32hex.
func NewBase32Hex() *Codec {
	return New(5,
		WithAlphabet(Base32HexAlphabet),
		WithRightPadFinalBits(),
		WithPadFinalGroup(),
	)
}

// NewCrockford returns an unpadded 5-bit codec over the Crockford base32
// alphabet. Decode with FoldCase for the customary case-insensitive reads.
func NewCrockford() *Codec {
	return New(5,
		WithAlphabet(CrockfordAlphabet),
		WithRightPadFinalBits(),
	)
}

// NewBase64 returns a 6-bit codec compatible with RFC 4648 base64,
// '='-padded to 4-symbol groups.
func NewBase64() *Codec {
	return New(6,
		WithAlphabet(Base64Alphabet),
		WithRightPadFinalBits(),
		WithPadFinalGroup(),
	)
}

// NewBase64URL returns an unpadded 6-bit codec over the URL-safe base64
// alphabet.
func NewBase64URL() *Codec {
	return New(6,
		WithAlphabet(Base64URLAlphabet),
		WithRightPadFinalBits(),
	)
}
