// File: core/memory/sizing.go
// Author: theMoor9
// License: Apache-2.0
//
// Pure derivation of buffer size, pool size and scale multiplier from the
// application profile and optional caller overrides.

package memory

import (
	"math"

	"github.com/theMoor9/SolidArx-Framework/api"
)

// BoundPolicy decides what happens to a requested sizing value that
// exceeds its safety bound.
type BoundPolicy uint8

const (
	// Reject fails the derivation with a SizingError.
	Reject BoundPolicy = iota
	// Clamp substitutes the bound itself.
	Clamp
)

const (
	// SizeBound caps buffer and pool sizes. Matches half the addressable
	// range so downstream arithmetic on two sizes cannot overflow.
	SizeBound = math.MaxInt / 2

	// MultiplierBound caps the profile scale factor.
	MultiplierBound = math.MaxUint8
)

// SizingPolicy resolves sizing inputs without blocking: a value beyond its
// bound is rejected or clamped per the configured BoundPolicy instead of
// being confirmed interactively. The zero value rejects.
type SizingPolicy struct {
	Bounds BoundPolicy
}

// BufferSize resolves the working buffer size. A nonzero requested value
// within SizeBound is returned verbatim; zero yields the profile default.
// Unsupported profiles default to 0, which the manager refuses later.
func (p SizingPolicy) BufferSize(app api.ApplicationType, requested int) (int, error) {
	return p.derive("buffer_size", requested, SizeBound, defaultBufferSize(app))
}

// PoolSize resolves the total byte budget for the eager pool fill, with
// the same contract as BufferSize.
func (p SizingPolicy) PoolSize(app api.ApplicationType, requested int) (int, error) {
	return p.derive("pool_size", requested, SizeBound, defaultPoolSize(app))
}

// ScaleMultiplier resolves the profile scale factor into [1, 255].
func (p SizingPolicy) ScaleMultiplier(app api.ApplicationType, requested int) (int, error) {
	return p.derive("scale_multiplier", requested, MultiplierBound, defaultMultiplier(app))
}

// Resolve derives a complete MemoryConfig from the profile and the
// caller-supplied (possibly zero) values in cfg.
func (p SizingPolicy) Resolve(app api.ApplicationType, cfg api.MemoryConfig) (api.MemoryConfig, error) {
	var out api.MemoryConfig
	var err error
	if out.BufferSize, err = p.BufferSize(app, cfg.BufferSize); err != nil {
		return api.MemoryConfig{}, err
	}
	if out.PoolSize, err = p.PoolSize(app, cfg.PoolSize); err != nil {
		return api.MemoryConfig{}, err
	}
	if out.ScaleMultiplier, err = p.ScaleMultiplier(app, cfg.ScaleMultiplier); err != nil {
		return api.MemoryConfig{}, err
	}
	return out, nil
}

// derive implements the shared contract. Negative values are always
// rejected; Clamp applies only to the upper bound.
func (p SizingPolicy) derive(field string, requested, bound, def int) (int, error) {
	switch {
	case requested < 0:
		return 0, &api.SizingError{Field: field, Requested: requested, Bound: bound}
	case requested == 0:
		return def, nil
	case requested > bound:
		if p.Bounds == Clamp {
			return bound, nil
		}
		return 0, &api.SizingError{Field: field, Requested: requested, Bound: bound}
	default:
		return requested, nil
	}
}

func defaultBufferSize(app api.ApplicationType) int {
	switch app {
	case api.WebApp:
		return 16 * 1024 * 1024
	case api.ApiBackend:
		return 8 * 1024 * 1024
	case api.DesktopApp:
		return 4 * 1024 * 1024
	case api.AutomationScript:
		return 2 * 1024 * 1024
	case api.EmbeddedSystem:
		return 512 * 1024
	default:
		return 0
	}
}

func defaultPoolSize(app api.ApplicationType) int {
	switch app {
	case api.WebApp:
		return 150 * 1024 * 1024
	case api.ApiBackend:
		return 100 * 1024 * 1024
	case api.DesktopApp:
		return 50 * 1024 * 1024
	case api.AutomationScript:
		return 30 * 1024 * 1024
	case api.EmbeddedSystem:
		return 5 * 1024 * 1024
	default:
		return 0
	}
}

func defaultMultiplier(app api.ApplicationType) int {
	switch app {
	case api.WebApp, api.ApiBackend, api.DesktopApp,
		api.AutomationScript, api.EmbeddedSystem:
		return 1
	default:
		return 0
	}
}
