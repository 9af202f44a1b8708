package search

// Naive is the byte-by-byte reference search. It is slow and obviously
// correct; the optimized searches are tested against it.
func Naive(haystack []byte, needle []byte) int64 {
	for i := 0; len(haystack)-i >= len(needle); i++ {
		j := 0
		for j < len(needle) && haystack[i+j] == needle[j] {
			j++
		}
		if j == len(needle) {
			return int64(i)
		}
	}
	return -1
}
