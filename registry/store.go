// File: registry/store.go
// Author: theMoor9
// License: Apache-2.0
//
// Explicitly owned entity stores. Earlier revisions kept process-wide
// mutable maps per entity kind; a Store is instead constructed by its
// owner and passed by reference, so ownership is always visible at the
// call site.

package registry

import (
	"sync"

	"github.com/google/btree"
)

type entry[T any] struct {
	id  uint32
	val T
}

// Store is a mutex-guarded, id-keyed collection of entities with ordered
// iteration. The zero value is not usable; construct with NewStore.
type Store[T any] struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[entry[T]]
}

// NewStore returns an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		tree: btree.NewG(32, func(a, b entry[T]) bool { return a.id < b.id }),
	}
}

// Save inserts or replaces the entity under id, returning the previous
// value when one was replaced.
func (s *Store[T]) Save(id uint32, v T) (prev T, replaced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.tree.ReplaceOrInsert(entry[T]{id: id, val: v})
	return old.val, ok
}

// Get returns the entity under id.
func (s *Store[T]) Get(id uint32) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.tree.Get(entry[T]{id: id})
	return e.val, ok
}

// Delete removes and returns the entity under id.
func (s *Store[T]) Delete(id uint32) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.tree.Delete(entry[T]{id: id})
	return e.val, ok
}

// Len reports the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

// Ascend visits entities in ascending id order until the callback returns
// false. The store lock is held for the whole walk; callbacks must not
// call back into the store.
func (s *Store[T]) Ascend(fn func(id uint32, v T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tree.Ascend(func(e entry[T]) bool {
		return fn(e.id, e.val)
	})
}
