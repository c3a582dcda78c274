// File: api/types.go
// Author: theMoor9
// License: Apache-2.0
//
// Closed enumerations and configuration records shared across the framework.

package api

import "strings"

// ApplicationType classifies the application profile the framework runs
// under. The profile drives default sizing and allocation strategy
// selection, and is supplied once at construction.
type ApplicationType uint8

const (
	// Unsupported is the zero value. It never maps to a working strategy;
	// consuming it surfaces a ConfigurationError.
	Unsupported ApplicationType = iota
	WebApp
	ApiBackend
	DesktopApp
	AutomationScript
	EmbeddedSystem
)

// String returns the canonical profile name.
func (t ApplicationType) String() string {
	switch t {
	case WebApp:
		return "webapp"
	case ApiBackend:
		return "api-backend"
	case DesktopApp:
		return "desktop"
	case AutomationScript:
		return "automation"
	case EmbeddedSystem:
		return "embedded"
	default:
		return "unsupported"
	}
}

// ParseApplicationType maps a case-insensitive profile name to its
// ApplicationType. Unknown names yield Unsupported rather than an error;
// the failure surfaces when the profile is consumed.
func ParseApplicationType(s string) ApplicationType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "webapp", "web-app", "web":
		return WebApp
	case "api-backend", "apibackend", "api":
		return ApiBackend
	case "desktop", "desktop-app", "desktopapp":
		return DesktopApp
	case "automation", "automation-script", "automationscript", "script":
		return AutomationScript
	case "embedded", "embedded-system", "embeddedsystem":
		return EmbeddedSystem
	default:
		return Unsupported
	}
}

// AllocationStrategy selects the allocation algorithm a memory manager
// runs. The set is closed; dispatch is an exhaustive switch, never an
// inheritance hierarchy.
type AllocationStrategy uint8

const (
	// Standard returns fresh zero-initialized buffers of the requested size.
	Standard AllocationStrategy = iota
	// PoolBased serves buffers from an eagerly filled FIFO pool and falls
	// back to fresh allocation once the pool is drained.
	PoolBased
	// CustomEmbedded always returns buffers of the configured fixed size,
	// ignoring the requested size.
	CustomEmbedded
)

// String returns the strategy name.
func (s AllocationStrategy) String() string {
	switch s {
	case Standard:
		return "standard"
	case PoolBased:
		return "pool-based"
	case CustomEmbedded:
		return "custom-embedded"
	default:
		return "unknown"
	}
}

// MemoryConfig carries the sizing inputs for a memory manager. Zero-valued
// fields are placeholders until resolved through a SizingPolicy; a manager
// refuses to construct from unresolved values.
type MemoryConfig struct {
	BufferSize      int // Length in bytes of each pooled buffer
	PoolSize        int // Total byte budget for the eager pool fill
	ScaleMultiplier int // Profile scale factor, in [1, 255] once resolved
}

// MemoryStats aggregates allocation accounting for observability.
type MemoryStats struct {
	PoolHits    int64 // Allocations served from the pool
	PoolMisses  int64 // Pool-based allocations that fell back to the heap
	FreshAllocs int64 // Buffers created outside the pool
	Returned    int64 // Buffers pushed back into the pool
	PoolLen     int   // Current pool depth
}
