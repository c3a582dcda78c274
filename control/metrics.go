// File: control/metrics.go
// Author: theMoor9
// License: Apache-2.0
//
// Runtime metrics registry. Components publish named values; consumers
// read consistent snapshots.

package control

import (
	"sync"
	"time"

	"github.com/theMoor9/SolidArx-Framework/api"
)

// MetricsRegistry holds named metric values behind a single lock.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set stores or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// PublishMemoryStats flattens an allocation snapshot into the registry.
func (mr *MetricsRegistry) PublishMemoryStats(s api.MemoryStats) {
	mr.mu.Lock()
	mr.metrics["memory.pool_hits"] = s.PoolHits
	mr.metrics["memory.pool_misses"] = s.PoolMisses
	mr.metrics["memory.fresh_allocs"] = s.FreshAllocs
	mr.metrics["memory.returned"] = s.Returned
	mr.metrics["memory.pool_len"] = s.PoolLen
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Snapshot returns a copy of the latest metrics.
func (mr *MetricsRegistry) Snapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated reports when the registry last changed.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
