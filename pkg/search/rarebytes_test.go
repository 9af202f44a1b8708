package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRareNeedleBytes(t *testing.T) {
	for _, tt := range []struct {
		needle         string
		rare1i, rare2i int
	}{
		{"ab", 1, 0},
		{"ba", 0, 1},
		{"hello", 2, 0},
		{"the quiz", 7, 4},
		{"a#bc", 1, 2},
		{"eeeeeeez", 7, 0},
	} {
		t.Run(tt.needle, func(t *testing.T) {
			r := newRareNeedleBytes([]byte(tt.needle))
			require.Equal(t, tt.rare1i, r.rare1i)
			require.Equal(t, tt.rare2i, r.rare2i)
			require.Equal(t, tt.needle[r.rare1i], r.rare1)
			require.Equal(t, tt.needle[r.rare2i], r.rare2)
		})
	}
}

func TestRareNeedleBytesNext(t *testing.T) {
	needle := []byte("zebra")
	haystack := []byte("zzzebrzzebrazebra")
	r := newRareNeedleBytes(needle)
	last := len(haystack) - len(needle)

	var starts []int
	for p := r.next(haystack, 0, last); p >= 0; p = r.next(haystack, p+1, last) {
		starts = append(starts, p)
	}
	// Every true match must be among the candidates.
	require.Contains(t, starts, 7)
	require.Contains(t, starts, 12)
	for _, p := range starts {
		require.Equal(t, r.rare1, haystack[p+r.rare1i])
		require.Equal(t, r.rare2, haystack[p+r.rare2i])
	}

	require.Equal(t, -1, r.next(haystack, last+1, last))
	require.Equal(t, -1, r.next([]byte("aaaaaaa"), 0, 2))
}

func TestByteRank(t *testing.T) {
	require.Greater(t, rank(' '), rank('e'))
	require.Greater(t, rank('e'), rank('z'))
	require.Greater(t, rank('z'), rank('#'))
	require.Greater(t, rank('\n'), rank(0x01))
}
