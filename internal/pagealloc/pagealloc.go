// File: internal/pagealloc/pagealloc.go
// Author: theMoor9
// License: Apache-2.0
//
// Platform-neutral raw allocator behind eager pool fills. Concrete
// allocators are selected at build time through platform-specific files.

package pagealloc

// Alloc returns a zero-initialized buffer of exactly n bytes, preferring
// the platform allocator and falling back to the Go heap when that path is
// unavailable. Buffers obtained here are owned for the process lifetime;
// there is no matching free.
func Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	if b, err := allocPages(n); err == nil && len(b) == n {
		return b
	}
	return make([]byte, n)
}
