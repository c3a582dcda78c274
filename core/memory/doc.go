// Package memory
// Author: theMoor9
//
// Profile-driven memory allocation for the SolidArx framework.
//
// The package chooses an allocation strategy from the application profile
// at construction time and executes it for the manager's lifetime:
//
//   - Standard: fresh zero-initialized buffers of the requested size.
//   - PoolBased: buffers served from an eagerly filled FIFO pool of
//     fixed-length buffers, with heap fallback once the pool drains.
//   - CustomEmbedded: fixed-size buffers for embedded targets.
//
// SizingPolicy resolves buffer size, pool size and scale multiplier from
// the profile and optional caller overrides. All operations are
// synchronous, non-blocking and free of I/O; a Manager is single-owner and
// must be guarded externally when shared across goroutines.
package memory
