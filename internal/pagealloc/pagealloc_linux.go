//go:build linux
// +build linux

// File: internal/pagealloc/pagealloc_linux.go
// Author: theMoor9
// License: Apache-2.0
//
// Linux raw allocator using anonymous private mappings. The kernel hands
// back zero-filled pages, so no explicit clearing is needed.

package pagealloc

import "golang.org/x/sys/unix"

func allocPages(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}
