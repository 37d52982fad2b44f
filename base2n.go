// Package base2n implements a generic fixed-radix binary-to-text codec.
//
// A codec is parameterized by the number of bits one output symbol carries
// (1 through 8) and by an alphabet whose first 2^bits symbols are used to
// spell those bit groups. This generalizes base16, base32 and base64 style
// encodings into one algorithm: input bytes are treated as a contiguous
// MSB-first bit stream and consumed bits-per-character at a time, with bit
// windows spanning byte boundaries as needed.
//
// Construction never fails. Out-of-range configuration is normalized to the
// nearest valid one: the bit width is clamped into [1,8] and reduced until
// the alphabet can satisfy it, and an alphabet shorter than two symbols is
// replaced by DefaultAlphabet. Callers that need a specific encoding should
// pass a correct configuration; the clamping exists so that a codec is
// always constructible.
//
// Symbols are single bytes. Multi-byte (rune) alphabets are out of scope.
package base2n

// Codec converts byte sequences to text drawn from a fixed alphabet and
// back. A Codec is immutable after New returns and is safe for concurrent
// use.
type Codec struct {
	bits     uint8
	radix    int
	alphabet []byte
	padRight bool
	padGroup bool
	padChar  byte

	// index maps a symbol byte to its bit-group value, invalidSymbol
	// where the byte is not part of the alphabet.
	index [256]int16

	// groupBytes is the smallest number of raw bytes that encodes to a
	// whole number of symbols; groupChars is that symbol count.
	groupBytes int
	groupChars int
}

type config struct {
	alphabet string
	padRight bool
	padGroup bool
	padChar  byte
}

// Option configures a Codec at construction time.
type Option func(*config)

// WithAlphabet sets the symbol alphabet. Only the first 2^bits symbols are
// used once the bit width is settled. Alphabets shorter than two symbols
// are replaced by DefaultAlphabet.
func WithAlphabet(alphabet string) Option {
	return func(cfg *config) {
		cfg.alphabet = alphabet
	}
}

// WithRightPadFinalBits left-justifies the valid bits of a final partial
// group, zero-filling on the right, before mapping the group to a symbol.
// Without it the leftover low bits are used as-is. RFC 4648 style encodings
// left-justify.
func WithRightPadFinalBits() Option {
	return func(cfg *config) {
		cfg.padRight = true
	}
}

// WithPadFinalGroup appends trailing pad symbols so the encoded length is a
// multiple of a whole byte-group's worth of symbols.
func WithPadFinalGroup() Option {
	return func(cfg *config) {
		cfg.padGroup = true
	}
}

// WithPadSymbol sets the trailing pad symbol, '=' by default. Only the
// first byte of symbol is used; an empty string leaves the default.
//
// The pad symbol should not also appear in the alphabet: Decode strips
// trailing pad symbols before interpreting content, so trailing data
// symbols equal to the pad symbol would be trimmed as padding. The overlap
// is not rejected because construction is total.
func WithPadSymbol(symbol string) Option {
	return func(cfg *config) {
		if len(symbol) > 0 {
			cfg.padChar = symbol[0]
		}
	}
}

// New returns a codec emitting bitsPerChar bits per symbol. Invalid
// configuration is normalized, never rejected: bitsPerChar is clamped into
// [1,8] and then reduced to the largest width the alphabet can satisfy.
func New(bitsPerChar int, opts ...Option) *Codec {
	cfg := config{
		alphabet: DefaultAlphabet,
		padChar:  '=',
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.alphabet) < 2 {
		cfg.alphabet = DefaultAlphabet
	}

	bits := clampBits(bitsPerChar, len(cfg.alphabet))

	c := &Codec{
		bits:     bits,
		radix:    1 << bits,
		padRight: cfg.padRight,
		padGroup: cfg.padGroup,
		padChar:  cfg.padChar,
	}
	c.alphabet = []byte(cfg.alphabet)[:c.radix]
	c.groupBytes = lcm(int(bits), 8) / 8
	c.groupChars = c.groupBytes * 8 / int(bits)

	buildIndex(&c.index, c.alphabet)

	return c
}

// clampBits normalizes a requested bit width against the alphabet length.
//
// invariants:
//
// - alphabetLen >= 2
func clampBits(bits, alphabetLen int) uint8 {
	if bits < 1 {
		bits = 1
	}
	if bits > 8 {
		bits = 8
	}

	for bits > 1 && alphabetLen < 1<<bits {
		bits--
	}

	return uint8(bits)
}

// BitsPerCharacter returns the effective bit width after normalization.
func (c *Codec) BitsPerCharacter() int {
	return int(c.bits)
}

// Radix returns the number of distinct symbols in use, 2^BitsPerCharacter.
func (c *Codec) Radix() int {
	return c.radix
}
