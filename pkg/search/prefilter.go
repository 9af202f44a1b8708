package search

import (
	"encoding/binary"
	"fmt"
)

// wordBytes is the width of the rolling word kept by the shift prefilters.
const wordBytes = 8

// Prefilter cheaply rejects window positions that cannot start a match before
// the scan pays for a full comparison.
//
// A Prefilter is stateful and must not be shared between concurrent scans.
// Reset primes it with a window of len(needle) bytes, Roll slides that window
// one byte to the right.
type Prefilter interface {
	// Reset loads the window starting at a new position.
	Reset(window, needle []byte)
	// Roll drops out from the left of the window and appends in on the right.
	Roll(out, in byte)
	// Candidate is false only if the current window differs from the needle.
	Candidate() bool
	// Covered is the number of trailing bytes the full comparison may skip:
	// a candidate window whose other bytes equal the needle is a match.
	Covered() int
}

// Mode selects the Prefilter a Searcher uses.
type Mode uint8

const (
	// ModeAuto picks a prefilter by needle length.
	ModeAuto Mode = iota
	// ModeShift keeps the last (up to eight) window bytes in a word.
	ModeShift
	// ModeSum keeps the difference of the window and needle byte sums.
	ModeSum
	// ModeShiftSum combines ModeShift and ModeSum.
	ModeShiftSum
	// ModeExhaustive disables prefiltering and compares every position.
	ModeExhaustive
)

var modeNames = [...]string{
	ModeAuto:       "auto",
	ModeShift:      "shift",
	ModeSum:        "sum",
	ModeShiftSum:   "shiftsum",
	ModeExhaustive: "exhaustive",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return ModeAuto, fmt.Errorf("unknown search mode %q", s)
}

// Modes lists every Mode.
func Modes() []Mode {
	return []Mode{ModeAuto, ModeShift, ModeSum, ModeShiftSum, ModeExhaustive}
}

// NewPrefilter returns a fresh Prefilter for needles of length needleLen.
// needleLen must be at least one.
func NewPrefilter(mode Mode, needleLen int) Prefilter {
	switch mode {
	case ModeExhaustive:
		return exhaustive{}
	case ModeSum:
		return &sumFilter{}
	case ModeShift:
		return newShiftFilter(needleLen)
	case ModeShiftSum:
		return &shiftSumFilter{shiftFilter: *newShiftFilter(needleLen)}
	}

	if needleLen <= wordBytes {
		return newShiftFilter(needleLen)
	}
	return &shiftSumFilter{shiftFilter: *newShiftFilter(needleLen)}
}

type exhaustive struct{}

func (exhaustive) Reset(_, _ []byte) {}
func (exhaustive) Roll(_, _ byte)    {}
func (exhaustive) Candidate() bool   { return true }
func (exhaustive) Covered() int      { return 0 }

// sumFilter tracks sum(window) - sum(needle). The difference stays within
// ±255*len(needle) so int64 cannot overflow.
type sumFilter struct {
	diff int64
}

func (f *sumFilter) Reset(window, needle []byte) {
	f.diff = 0
	for i, c := range needle {
		f.diff += int64(window[i]) - int64(c)
	}
}

func (f *sumFilter) Roll(out, in byte) {
	f.diff += int64(in) - int64(out)
}

func (f *sumFilter) Candidate() bool {
	return f.diff == 0
}

// Covered is one: with equal sums, equal leading bytes force an equal last byte.
func (f *sumFilter) Covered() int {
	return 1
}

// shiftFilter compares the last width window bytes, packed big-endian into a
// word, against the same bytes of the needle.
type shiftFilter struct {
	word  uint64
	want  uint64
	mask  uint64
	width int
}

func newShiftFilter(needleLen int) *shiftFilter {
	width := min(needleLen, wordBytes)
	mask := ^uint64(0)
	if width < wordBytes {
		mask = uint64(1)<<(8*width) - 1
	}
	return &shiftFilter{mask: mask, width: width}
}

func (f *shiftFilter) Reset(window, needle []byte) {
	f.word = loadWord(window[len(window)-f.width:])
	f.want = loadWord(needle[len(needle)-f.width:])
}

func (f *shiftFilter) Roll(_, in byte) {
	f.word = (f.word<<8 | uint64(in)) & f.mask
}

func (f *shiftFilter) Candidate() bool {
	return f.word == f.want
}

func (f *shiftFilter) Covered() int {
	return f.width
}

// shiftSumFilter needs both the trailing word and the byte sums to agree.
// Beyond the trailing word it also covers the byte right before it.
type shiftSumFilter struct {
	shiftFilter
	sum   sumFilter
	extra int
}

func (f *shiftSumFilter) Reset(window, needle []byte) {
	f.shiftFilter.Reset(window, needle)
	f.sum.Reset(window, needle)
	f.setExtra(len(needle))
}

func (f *shiftSumFilter) Roll(out, in byte) {
	f.shiftFilter.Roll(out, in)
	f.sum.Roll(out, in)
}

func (f *shiftSumFilter) Candidate() bool {
	return f.shiftFilter.Candidate() && f.sum.Candidate()
}

func (f *shiftSumFilter) Covered() int {
	return f.width + f.extra
}

// extra is one once the needle is longer than the trailing word.
func (f *shiftSumFilter) setExtra(needleLen int) {
	f.extra = 0
	if needleLen > f.width {
		f.extra = 1
	}
}

// loadWord packs b, at most wordBytes long, big-endian into a word so the
// first byte ends up most significant.
func loadWord(b []byte) uint64 {
	if len(b) == wordBytes {
		return binary.BigEndian.Uint64(b)
	}
	var w uint64
	for _, c := range b {
		w = w<<8 | uint64(c)
	}
	return w
}
