package search

import "bytes"

// rareNeedleBytes holds the two needle bytes least likely to occur in a
// haystack, and their offsets in the needle. The scan only considers start
// positions where both line up.
type rareNeedleBytes struct {
	rare1, rare2   byte
	rare1i, rare2i int
}

// newRareNeedleBytes ranks needle bytes by byteRank. The needle must be at
// least two bytes long.
func newRareNeedleBytes(needle []byte) rareNeedleBytes {
	rare1, rare1i := needle[0], 0
	rare2, rare2i := needle[1], 1
	if rank(rare2) < rank(rare1) {
		rare1, rare2 = rare2, rare1
		rare1i, rare2i = rare2i, rare1i
	}

	for i := 2; i < len(needle); i++ {
		b := needle[i]
		if rank(b) < rank(rare1) {
			rare2, rare2i = rare1, rare1i
			rare1, rare1i = b, i
		} else if b != rare1 && rank(b) < rank(rare2) {
			rare2, rare2i = b, i
		}
	}

	return rareNeedleBytes{rare1: rare1, rare2: rare2, rare1i: rare1i, rare2i: rare2i}
}

// next returns the smallest start position p in [from, last] at which both
// rare bytes line up with haystack, or -1. A position it passes over cannot
// start a match. last must satisfy last+len(needle) <= len(haystack).
func (r rareNeedleBytes) next(haystack []byte, from, last int) int {
	for from <= last {
		j := bytes.IndexByte(haystack[from+r.rare1i:last+r.rare1i+1], r.rare1)
		if j < 0 {
			return -1
		}
		p := from + j
		if haystack[p+r.rare2i] == r.rare2 {
			return p
		}
		from = p + 1
	}
	return -1
}

func rank(b byte) uint8 {
	return byteRank[b]
}

// byteRank approximates how common a byte is in text and log data. Lower
// ranks are rarer.
var byteRank = func() (ranks [256]uint8) {
	for i := range ranks {
		c := byte(i)
		switch {
		case c == ' ':
			ranks[i] = 255
		case c == 0:
			// padding in binary data
			ranks[i] = 100
		case c == '\n' || c == '\t' || c == '\r':
			ranks[i] = 180
		case c < 0x20 || c == 0x7f:
			ranks[i] = 20
		case c >= 'a' && c <= 'z':
			ranks[i] = 200
		case c >= 'A' && c <= 'Z':
			ranks[i] = 150
		case c >= '0' && c <= '9':
			ranks[i] = 170
		case c >= 0x80:
			ranks[i] = 60
		default:
			ranks[i] = 130
		}
	}

	// English letter frequency, most common first.
	for i, c := range []byte("etaoinshrdlcumwfgypbvkjxqz") {
		ranks[c] = 250 - uint8(2*i)
	}
	for _, c := range []byte(`.,:"/-=_`) {
		ranks[c] = 190
	}
	return ranks
}()
