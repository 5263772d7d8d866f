package addrcheck

// Alphabet is an ASCII character set membership table.
type Alphabet [128]bool

func newAlphabet(chars string) Alphabet {
	var a Alphabet
	for i := 0; i < len(chars); i++ {
		a[chars[i]] = true
	}
	return a
}

func (a Alphabet) contains(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || !a[c] {
			return false
		}
	}
	return true
}

var (
	// base58 excludes the visually ambiguous 0, O, I and l.
	base58 = newAlphabet("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")

	// bech32 is the data alphabet of segwit-style addresses; it excludes
	// 1, b, i and o.
	bech32 = newAlphabet("qpzry9x8gf2tvdw0s3jn54khce6mua7l")

	alphanumeric = newAlphabet("0123456789" +
		"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ")
)
