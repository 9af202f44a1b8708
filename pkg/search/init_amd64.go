package search

import (
	"golang.org/x/sys/cpu"
)

// bytes.IndexByte uses AVX2 when present.
var hasFastIndexByte = cpu.X86.HasAVX2
