package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	"github.com/jeschkies/go-byteshift/pkg/search"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	withNul := filepath.Join(dir, "nul.bin")
	require.NoError(t, os.WriteFile(withNul, []byte("XXX\x00needleXXXneedle"), 0o644))
	plain := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(plain, []byte("XXXneedleXXX"), 0o644))

	for _, tt := range []struct {
		name    string
		cfg     config
		matched bool
		out     string
	}{
		{
			name:    "first match",
			cfg:     config{needle: "needle", files: []string{withNul, plain}},
			matched: true,
			out:     withNul + ":4\n" + plain + ":3\n",
		},
		{
			name:    "all matches",
			cfg:     config{needle: "needle", files: []string{withNul}, all: true},
			matched: true,
			out:     withNul + ":4\n" + withNul + ":13\n",
		},
		{
			name:    "nul terminated",
			cfg:     config{needle: "needle", files: []string{withNul, plain}, nul: true},
			matched: true,
			out:     plain + ":3\n",
		},
		{
			name:    "hex needle with zero byte",
			cfg:     config{needle: "58006e", files: []string{withNul}, hex: true, mode: search.ModeExhaustive},
			matched: true,
			out:     withNul + ":2\n",
		},
		{
			name: "no match",
			cfg:  config{needle: "haystack", files: []string{plain}, mode: search.ModeSum, skipAhead: true},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			matched, err := run(tt.cfg, strings.NewReader(""), &out, log.NewNopLogger())
			require.NoError(t, err)
			require.Equal(t, tt.matched, matched)
			require.Equal(t, tt.out, out.String())
		})
	}
}

func TestRunStdin(t *testing.T) {
	var out bytes.Buffer
	matched, err := run(config{needle: "bar"}, strings.NewReader("foo bar"), &out, log.NewNopLogger())
	require.NoError(t, err)
	require.True(t, matched)
	require.Equal(t, "-:4\n", out.String())
}

func TestRunErrors(t *testing.T) {
	_, err := run(config{needle: "zz", hex: true}, strings.NewReader(""), &bytes.Buffer{}, log.NewNopLogger())
	require.ErrorContains(t, err, "decoding hex needle")

	missing := filepath.Join(t.TempDir(), "missing")
	_, err = run(config{needle: "x", files: []string{missing}}, strings.NewReader(""), &bytes.Buffer{}, log.NewNopLogger())
	require.ErrorContains(t, err, "reading "+missing)
}

func TestFindAll(t *testing.T) {
	haystack := []byte("aaaa")
	require.Equal(t, []int64{0}, findAll(search.Index, haystack, []byte("aa"), false))
	require.Equal(t, []int64{0, 2}, findAll(search.Index, haystack, []byte("aa"), true))
	require.Equal(t, []int64{0, 1, 2, 3, 4}, findAll(search.Index, haystack, nil, true))
	require.Nil(t, findAll(search.Index, haystack, []byte("b"), true))
}
