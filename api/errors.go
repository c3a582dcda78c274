// File: api/errors.go
// Author: theMoor9
// License: Apache-2.0
//
// Error taxonomy for the framework core. Every failure surfaces as one of
// three typed errors so callers can dispatch with errors.As; nothing in the
// core terminates the process.

package api

import "fmt"

// ConfigurationError reports an unusable application profile or sizing
// configuration. Raised only at construction time; fatal to the caller in
// the sense that no manager is produced.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "config: " + e.Reason
}

// SizingError reports a requested sizing value outside its representable
// safety range. It replaces the interactive confirmation flow of earlier
// revisions with a typed, non-blocking result.
type SizingError struct {
	Field     string // "buffer_size", "pool_size" or "scale_multiplier"
	Requested int
	Bound     int
}

func (e *SizingError) Error() string {
	return fmt.Sprintf("sizing: %s value %d outside safe range [0, %d]",
		e.Field, e.Requested, e.Bound)
}

// ResourceAllocationError reports an internal invariant violation surfaced
// from Allocate or Deallocate, such as a missing pool on a pool-based
// manager. It is always returned to the caller, never discarded.
type ResourceAllocationError struct {
	Reason string
}

func (e *ResourceAllocationError) Error() string {
	return "alloc: " + e.Reason
}
