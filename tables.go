package base2n

// invalidSymbol marks bytes outside the alphabet. The index is int16 rather
// than byte because an 8-bit codec uses every byte value as a bit-group
// value, leaving no spare byte to act as the sentinel.
const invalidSymbol = int16(-1)

func buildIndex(index *[256]int16, alphabet []byte) {
	for i := range index {
		index[i] = invalidSymbol
	}

	for i, s := range alphabet {
		index[s] = int16(i)
	}
}

// foldByte returns the opposite-case variant of an ASCII letter, or the
// byte unchanged.
func foldByte(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c - ('a' - 'A')
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A')
	}

	return c
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
