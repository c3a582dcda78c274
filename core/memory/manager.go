// File: core/memory/manager.go
// Author: theMoor9
// License: Apache-2.0
//
// Manager orchestrates strategy selection from the application profile and
// executes allocation and deallocation for the application lifetime.

package memory

import (
	"fmt"

	"github.com/theMoor9/SolidArx-Framework/api"
)

// Manager owns its allocation strategy, its optional pool and a copy of
// the resolved memory configuration. It is constructed once per
// application context and performs no internal locking: share it across
// goroutines only behind external synchronization.
type Manager struct {
	strategy api.AllocationStrategy
	pool     *bufferPool
	cfg      api.MemoryConfig
	stats    api.MemoryStats
}

// SelectStrategy maps an application profile onto its allocation strategy.
// Evaluated once at construction; unsupported profiles fail with a
// ConfigurationError.
func SelectStrategy(app api.ApplicationType) (api.AllocationStrategy, error) {
	switch app {
	case api.WebApp, api.ApiBackend:
		return api.PoolBased, nil
	case api.DesktopApp, api.AutomationScript:
		return api.Standard, nil
	case api.EmbeddedSystem:
		return api.CustomEmbedded, nil
	default:
		return 0, &api.ConfigurationError{Reason: "unsupported application type"}
	}
}

// New constructs a Manager for the given profile and resolved sizing
// configuration. BufferSize and PoolSize must be strictly positive (zero
// values are resolved through SizingPolicy first). Pool-based managers
// eagerly fill their pool; the other strategies leave it absent.
func New(app api.ApplicationType, cfg api.MemoryConfig) (*Manager, error) {
	strategy, err := SelectStrategy(app)
	if err != nil {
		return nil, err
	}
	if cfg.BufferSize <= 0 {
		return nil, &api.ConfigurationError{Reason: "buffer size must be positive, resolve it through SizingPolicy first"}
	}
	if cfg.PoolSize <= 0 {
		return nil, &api.ConfigurationError{Reason: "pool size must be positive, resolve it through SizingPolicy first"}
	}

	m := &Manager{strategy: strategy, cfg: cfg}
	if strategy == api.PoolBased {
		m.pool = newBufferPool(cfg.BufferSize, cfg.PoolSize)
	}
	return m, nil
}

// Strategy returns the manager's default allocation strategy.
func (m *Manager) Strategy() api.AllocationStrategy {
	return m.strategy
}

// Config returns a copy of the resolved memory configuration.
func (m *Manager) Config() api.MemoryConfig {
	return m.cfg
}

// Allocate returns a buffer according to the effective strategy: the
// per-call override when non-nil, the manager default otherwise. The
// override is never persisted.
//
// Pool-based allocation pops the oldest pooled buffer, whose length is the
// configured buffer size regardless of size; callers must not assume the
// two match. A drained pool falls back to a fresh size-byte buffer.
func (m *Manager) Allocate(override *api.AllocationStrategy, size int) ([]byte, error) {
	if size < 0 {
		return nil, &api.ResourceAllocationError{Reason: fmt.Sprintf("negative allocation size %d", size)}
	}

	strategy := m.strategy
	if override != nil {
		strategy = *override
	}

	switch strategy {
	case api.Standard:
		m.stats.FreshAllocs++
		return make([]byte, size), nil
	case api.PoolBased:
		if m.pool == nil {
			return nil, &api.ResourceAllocationError{Reason: "pool absent on pool-based allocation"}
		}
		if buf, ok := m.pool.popFront(); ok {
			m.stats.PoolHits++
			return buf, nil
		}
		m.stats.PoolMisses++
		m.stats.FreshAllocs++
		return make([]byte, size), nil
	case api.CustomEmbedded:
		m.stats.FreshAllocs++
		return make([]byte, m.cfg.BufferSize), nil
	default:
		return nil, &api.ResourceAllocationError{Reason: fmt.Sprintf("unknown allocation strategy %d", strategy)}
	}
}

// Deallocate releases a buffer. Dispatch is on the manager's default
// strategy, never on any override used at the paired Allocate call: a
// pool-based manager re-enqueues every returned buffer, including buffers
// of foreign length produced under an override.
func (m *Manager) Deallocate(buf []byte) error {
	switch m.strategy {
	case api.Standard, api.CustomEmbedded:
		// Ownership released; the garbage collector reclaims the buffer.
		return nil
	case api.PoolBased:
		if m.pool == nil {
			return &api.ResourceAllocationError{Reason: "pool absent on pool-based deallocation"}
		}
		m.pool.pushBack(buf)
		m.stats.Returned++
		return nil
	default:
		return &api.ResourceAllocationError{Reason: fmt.Sprintf("unknown allocation strategy %d", m.strategy)}
	}
}

// Stats returns a snapshot of allocation accounting, including the
// current pool depth.
func (m *Manager) Stats() api.MemoryStats {
	s := m.stats
	if m.pool != nil {
		s.PoolLen = m.pool.len()
	}
	return s
}
