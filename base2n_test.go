package base2n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_clampBits(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Equal(uint8(1), clampBits(0, 66))
	is.Equal(uint8(1), clampBits(-7, 66))
	is.Equal(uint8(8), clampBits(9, 256))
	is.Equal(uint8(8), clampBits(100, 256))
	is.Equal(uint8(5), clampBits(5, 32))
	is.Equal(uint8(4), clampBits(5, 31))
	is.Equal(uint8(1), clampBits(8, 2))
	is.Equal(uint8(6), clampBits(8, len(DefaultAlphabet)))
}

func TestNewNormalization(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	fullAlphabet := func() string {
		var sb strings.Builder
		for i := range 256 {
			sb.WriteByte(byte(i))
		}
		return sb.String()
	}()

	// a too-wide request against a 16 symbol alphabet settles on 4 bits,
	// it does not error
	c := New(10, WithAlphabet("0123456789abcdef"))
	is.Equal(4, c.BitsPerCharacter())
	is.Equal(16, c.Radix())

	// width below 1 is forced to 1
	c = New(0, WithAlphabet("01"))
	is.Equal(1, c.BitsPerCharacter())
	is.Equal(2, c.Radix())

	c = New(-3)
	is.Equal(1, c.BitsPerCharacter())

	// width above 8 is clamped to 8 when the alphabet can carry it
	c = New(12, WithAlphabet(fullAlphabet))
	is.Equal(8, c.BitsPerCharacter())
	is.Equal(256, c.Radix())

	// an undersized alphabet is replaced by the default, which carries
	// up to 6 bits
	c = New(8, WithAlphabet("A"))
	is.Equal(6, c.BitsPerCharacter())
	is.Equal(64, c.Radix())

	c = New(8)
	is.Equal(6, c.BitsPerCharacter())

	// in-range configuration passes through untouched
	c = New(5, WithAlphabet(Base32Alphabet))
	is.Equal(5, c.BitsPerCharacter())
	is.Equal(32, c.Radix())
}

func TestPadSymbolNormalization(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	// only the first byte of a longer pad value is used
	c := New(5,
		WithAlphabet(Base32Alphabet),
		WithRightPadFinalBits(),
		WithPadFinalGroup(),
		WithPadSymbol("*#"),
	)
	is.Equal("MY******", c.EncodeToString([]byte("f")))

	got, err := c.DecodeString("MY******")
	is.NoError(err)
	is.Equal([]byte("f"), got)

	// an empty pad value keeps the '=' default
	c = New(5,
		WithAlphabet(Base32Alphabet),
		WithRightPadFinalBits(),
		WithPadFinalGroup(),
		WithPadSymbol(""),
	)
	is.Equal("MY======", c.EncodeToString([]byte("f")))
}
