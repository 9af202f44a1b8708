package search

import (
	"golang.org/x/sys/cpu"
)

var hasFastIndexByte = cpu.ARM64.HasASIMD
