//go:build !linux
// +build !linux

// File: internal/pagealloc/pagealloc_stub.go
// Author: theMoor9
// License: Apache-2.0
//
// Fallback raw allocator for platforms without a dedicated path.

package pagealloc

func allocPages(n int) ([]byte, error) {
	return make([]byte, n), nil
}
