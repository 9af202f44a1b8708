package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/jeschkies/go-byteshift/pkg/search"
)

type config struct {
	needle    string
	files     []string
	nul       bool
	hex       bool
	all       bool
	mode      search.Mode
	skipAhead bool
}

// run searches every file in cfg, or stdin, and writes one "name:offset" line
// per match to out. It reports whether anything matched.
func run(cfg config, stdin io.Reader, out io.Writer, logger log.Logger) (bool, error) {
	needle, err := decodeNeedle(cfg.needle, cfg.hex)
	if err != nil {
		return false, err
	}

	if cfg.nul {
		needle = untilNul(needle)
	}

	s := search.New(search.WithMode(cfg.mode), search.WithSkipAhead(cfg.skipAhead))
	find := s.Index
	if cfg.nul {
		find = s.IndexNul
	}
	level.Debug(logger).Log("msg", "searching", "needle_len", len(needle), "mode", s.Mode(), "skip_ahead", s.SkipAhead(), "nul", cfg.nul)

	files := cfg.files
	if len(files) == 0 {
		files = []string{"-"}
	}

	matched := false
	for _, name := range files {
		haystack, err := readHaystack(name, stdin)
		if err != nil {
			return matched, err
		}

		if cfg.nul {
			haystack = untilNul(haystack)
		}

		offsets := findAll(find, haystack, needle, cfg.all)
		level.Debug(logger).Log("msg", "searched file", "file", name, "size", len(haystack), "matches", len(offsets))
		for _, off := range offsets {
			if _, err := fmt.Fprintf(out, "%s:%d\n", name, off); err != nil {
				return matched, errors.Wrap(err, "writing result")
			}
		}
		matched = matched || len(offsets) > 0
	}
	return matched, nil
}

func decodeNeedle(s string, isHex bool) ([]byte, error) {
	if !isHex {
		return []byte(s), nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding hex needle %q", s)
	}
	return b, nil
}

func readHaystack(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		return b, errors.Wrap(err, "reading stdin")
	}
	b, err := os.ReadFile(name)
	return b, errors.Wrapf(err, "reading %s", name)
}

// findAll returns the offset of the first match, or of every non-overlapping
// match when all is set.
func findAll(find func(haystack, needle []byte) int64, haystack, needle []byte, all bool) []int64 {
	var offsets []int64
	var from int64
	for from <= int64(len(haystack)) {
		i := find(haystack[from:], needle)
		if i < 0 {
			break
		}
		offsets = append(offsets, from+i)
		if !all {
			break
		}
		from += i + int64(max(len(needle), 1))
	}
	return offsets
}

// untilNul cuts b at its first zero byte so that --all never reports matches
// past the end of a NUL-terminated haystack.
func untilNul(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
