// Package strings exposes the byteshift searches for strings.
package strings

import (
	"unsafe"

	"github.com/jeschkies/go-byteshift/pkg/search"
)

// Index returns the index of the first instance of substr in s, or -1.
// NUL characters are ordinary data.
func Index(s, substr string) int {
	return int(search.Index(bytesOf(s), bytesOf(substr)))
}

// IndexNul is Index for C-style strings: s and substr end at their first
// NUL character.
func IndexNul(s, substr string) int {
	return int(search.IndexNul(bytesOf(s), bytesOf(substr)))
}

// Contains reports whether substr is within s.
func Contains(s, substr string) bool {
	return Index(s, substr) >= 0
}

// bytesOf returns the bytes of s without copying. The search package only
// reads its inputs, so the result is never written to.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
