package search

import "bytes"

// scan is the length-bounded search behind both Index and IndexNul. It
// requires 2 <= len(needle) <= len(haystack).
//
// Start positions are visited in increasing order. Positions are only passed
// over when the rare needle bytes do not line up or the prefilter rejects the
// window, so the first full comparison that succeeds is the leftmost match.
func (s *Searcher) scan(haystack, needle []byte) int {
	n := len(needle)
	last := len(haystack) - n

	rare := newRareNeedleBytes(needle)
	i := rare.next(haystack, 0, last)
	if i < 0 {
		return -1
	}

	f := NewPrefilter(s.mode, n)
	f.Reset(haystack[i:i+n], needle)
	for {
		if f.Candidate() {
			k := n - f.Covered()
			if bytes.Equal(haystack[i:i+k], needle[:k]) {
				return i
			}
			if s.skipAhead {
				if i = rare.next(haystack, i+1, last); i < 0 {
					return -1
				}
				f.Reset(haystack[i:i+n], needle)
				continue
			}
		}

		if i == last {
			return -1
		}
		f.Roll(haystack[i], haystack[i+n])
		i++
	}
}
