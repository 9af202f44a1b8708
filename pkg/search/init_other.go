//go:build !amd64 && !arm64

package search

var hasFastIndexByte = false
