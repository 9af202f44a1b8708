package search

import (
	"bytes"
)

var std = New()

// Index returns the first position the needle is in the haystack or -1 if
// needle was not found. Zero bytes are ordinary data and an empty needle is
// found at 0.
func Index(haystack []byte, needle []byte) int64 {
	return std.Index(haystack, needle)
}

// IndexNul is Index for NUL-terminated data: haystack and needle both end at
// their first zero byte, or at the end of the slice if they have none. A match
// never extends across a zero byte in haystack.
func IndexNul(haystack []byte, needle []byte) int64 {
	return std.IndexNul(haystack, needle)
}

// Searcher is a search configuration. It holds no per-search state and is
// safe for concurrent use.
type Searcher struct {
	mode      Mode
	skipAhead bool
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithMode selects the prefilter.
func WithMode(m Mode) Option {
	return func(s *Searcher) { s.mode = m }
}

// WithSkipAhead makes a failed full comparison jump to the next position the
// rare needle bytes line up instead of rolling forward byte by byte. It pays
// off where bytes.IndexByte is vectorized, which is the default.
func WithSkipAhead(on bool) Option {
	return func(s *Searcher) { s.skipAhead = on }
}

// New returns a Searcher using ModeAuto and the platform's skip-ahead default.
func New(opts ...Option) *Searcher {
	s := &Searcher{mode: ModeAuto, skipAhead: hasFastIndexByte}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Mode returns the prefilter mode of s.
func (s *Searcher) Mode() Mode { return s.mode }

// SkipAhead reports whether s skips ahead after failed comparisons.
func (s *Searcher) SkipAhead() bool { return s.skipAhead }

// Index returns the first position the needle is in the haystack or -1.
func (s *Searcher) Index(haystack []byte, needle []byte) int64 {
	switch n := len(needle); {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return int64(bytes.IndexByte(haystack, needle[0]))
	}
	return int64(s.scan(haystack, needle))
}

// IndexNul returns the first position the NUL-terminated needle is in the
// NUL-terminated haystack or -1.
func (s *Searcher) IndexNul(haystack []byte, needle []byte) int64 {
	return s.Index(untilNul(haystack), untilNul(needle))
}

// untilNul cuts b at its first zero byte.
func untilNul(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
