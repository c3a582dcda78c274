// File: control/config.go
// Author: theMoor9
// License: Apache-2.0
//
// Thread-safe runtime view of the resolved configuration with listener
// notification on updates.

package control

import "sync"

// ConfigStore is a dynamic key/value map with atomic snapshot reads.
// Listeners fire on every update; the memory core itself never changes its
// sizing after construction, so listeners mostly serve collaborators such
// as the connection layer.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: make(map[string]any),
	}
}

// Snapshot returns a copy of all values.
func (cs *ConfigStore) Snapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// Set merges new values and notifies listeners synchronously.
func (cs *ConfigStore) Set(values map[string]any) {
	cs.mu.Lock()
	for k, v := range values {
		cs.config[k] = v
	}
	listeners := make([]func(), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnUpdate registers a listener hook called after every Set.
func (cs *ConfigStore) OnUpdate(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
