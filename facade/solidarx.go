// File: facade/solidarx.go
// Unified facade layer for the SolidArx framework.
// Author: theMoor9
// License: Apache-2.0
//
// SolidArx aggregates the framework components behind a single entry
// point: it resolves sizing from the application profile, constructs the
// memory manager, exposes the runtime configuration and metrics views, and
// optionally wires a connection manager. The facade adds no semantics of
// its own; everything it does can also be assembled by hand from the
// component packages.

package facade

import (
	"github.com/theMoor9/SolidArx-Framework/api"
	"github.com/theMoor9/SolidArx-Framework/config"
	"github.com/theMoor9/SolidArx-Framework/control"
	"github.com/theMoor9/SolidArx-Framework/core/memory"
	"github.com/theMoor9/SolidArx-Framework/network"
	"github.com/theMoor9/SolidArx-Framework/pkg/log"
)

// Config holds parameters immutable per run.
type Config struct {
	AppType  api.ApplicationType
	Memory   api.MemoryConfig   // zero fields resolve to profile defaults
	Bounds   memory.BoundPolicy // clamp-vs-reject for oversized values
	LogLevel string             // empty keeps the current level

	// Connection enables the connection layer when non-nil.
	Connection *network.ConnectionConfig
}

// FromEnv builds a Config from the process environment.
func FromEnv() *Config {
	s := config.Load()
	return &Config{
		AppType:  s.AppType,
		Memory:   s.Memory,
		Bounds:   s.Bounds,
		LogLevel: s.LogLevel,
	}
}

// SolidArx is the assembled framework instance.
type SolidArx struct {
	cfg     *Config
	memory  *memory.Manager
	conn    *network.ConnectionManager
	runtime *control.ConfigStore
	metrics *control.MetricsRegistry
}

// New resolves sizing for the configured profile and constructs all
// components. Construction failures abort entirely: no partially wired
// instance is returned.
func New(cfg *Config) (*SolidArx, error) {
	if cfg == nil {
		cfg = FromEnv()
	}
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	}

	policy := memory.SizingPolicy{Bounds: cfg.Bounds}
	resolved, err := policy.Resolve(cfg.AppType, cfg.Memory)
	if err != nil {
		return nil, err
	}

	mgr, err := memory.New(cfg.AppType, resolved)
	if err != nil {
		return nil, err
	}
	log.Infof("memory manager ready: profile=%s strategy=%s buffer=%d pool=%d",
		cfg.AppType, mgr.Strategy(), resolved.BufferSize, resolved.PoolSize)

	s := &SolidArx{
		cfg:     cfg,
		memory:  mgr,
		runtime: control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
	}
	s.runtime.Set(map[string]any{
		"app_type":         cfg.AppType.String(),
		"strategy":         mgr.Strategy().String(),
		"buffer_size":      resolved.BufferSize,
		"pool_size":        resolved.PoolSize,
		"scale_multiplier": resolved.ScaleMultiplier,
	})

	if cfg.Connection != nil {
		s.conn, err = network.NewConnectionManager(*cfg.Connection, network.TCPDialer{})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Memory returns the memory manager.
func (s *SolidArx) Memory() *memory.Manager {
	return s.memory
}

// Connection returns the connection manager, or nil when the connection
// layer is disabled.
func (s *SolidArx) Connection() *network.ConnectionManager {
	return s.conn
}

// Runtime returns the resolved configuration view.
func (s *SolidArx) Runtime() *control.ConfigStore {
	return s.runtime
}

// Metrics returns the metrics registry.
func (s *SolidArx) Metrics() *control.MetricsRegistry {
	return s.metrics
}

// PublishStats snapshots the memory manager's counters into the metrics
// registry and returns the snapshot.
func (s *SolidArx) PublishStats() api.MemoryStats {
	stats := s.memory.Stats()
	s.metrics.PublishMemoryStats(stats)
	return stats
}
