// SPDX-License-Identifier: MPL-2.0

package register

import (
	"slices"
	"sync"
)

type (
	// Store is the read side of an entry store, as seen by the picker.
	// Keys returns keys in display order. Get may report a key from an earlier
	// Keys call as missing when the store was mutated in between.
	Store interface {
		Keys() []Key
		Get(k Key) (any, bool)
	}

	// MemStore is an ordered in-memory Store. Insertion order is display order;
	// overwriting an existing key keeps its position.
	MemStore struct {
		mu     sync.RWMutex
		order  []Key
		values map[Key]any
	}
)

// NewMemStore creates a store holding the given entries in order.
// Later entries overwrite earlier ones with the same key.
func NewMemStore(entries ...Entry) *MemStore {
	s := &MemStore{values: make(map[Key]any, len(entries))}
	for _, e := range entries {
		s.Set(e.Key, e.Value)
	}
	return s
}

// Keys implements Store.
func (s *MemStore) Keys() []Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// Get implements Store.
func (s *MemStore) Get(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[k]
	return v, ok
}

// Set stores v under k. A nil value deletes the entry.
func (s *MemStore) Set(k Key, v any) {
	if v == nil {
		s.Delete(k)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.values[k]; !exists {
		s.order = append(s.order, k)
	}
	s.values[k] = v
}

// Delete removes k. Deleting a missing key is a no-op.
func (s *MemStore) Delete(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.values[k]; !exists {
		return
	}
	delete(s.values, k)
	s.order = slices.DeleteFunc(s.order, func(o Key) bool { return o == k })
}

// Len returns the number of entries.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Entries returns a snapshot of every entry in display order.
func Entries(s Store) []Entry {
	keys := s.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		if v, ok := s.Get(k); ok {
			out = append(out, Entry{Key: k, Value: v})
		}
	}
	return out
}

// UnusedKeys returns the candidates that do not name an entry in s, preserving
// candidate order.
func UnusedKeys(s Store, candidates []Key) []Key {
	out := make([]Key, 0, len(candidates))
	for _, k := range candidates {
		if _, used := s.Get(k); !used {
			out = append(out, k)
		}
	}
	return out
}
