package gocollect

import (
	"runtime"
	"sync/atomic"
	"weak"
)

// RefStrength selects how a reference slot holds its referent.
type RefStrength int

const (
	// RefStrong is an ordinary reference that keeps the referent alive.
	RefStrong RefStrength = iota

	// RefWeak does not keep the referent alive; the entry disappears once
	// the referent is collected.
	RefWeak

	// RefSoft is accepted for compatibility with memory-pressure-sensitive
	// caches; Go's runtime has no soft references, so it behaves as
	// RefWeak.
	RefSoft
)

// Weak containers hold keys and/or values through weak.Pointer slots.
// A collected referent makes its entry invisible to every view (Get, Len,
// Range, Keys, Values); the entry may transiently occupy internal storage
// until a scavenge pass runs, which happens on every mutating operation.
// Reclamations are counted through runtime.AddCleanup so scavenging is
// skipped while nothing has been collected.
//
// The plain variants in this file are safe for a single goroutine only;
// the Concurrent variants are intrinsically safe for concurrent use.

// WeakValueMap maps strong keys to weakly held values: a cache whose
// entries may be dropped once the value is unreferenced elsewhere.
type WeakValueMap[K comparable, V any] struct {
	entries map[K]weak.Pointer[V]
	cleared atomic.Int64
}

// NewWeakValueMap creates an empty weak-valued map.
func NewWeakValueMap[K comparable, V any]() *WeakValueMap[K, V] {
	return &WeakValueMap[K, V]{entries: make(map[K]weak.Pointer[V])}
}

// Put associates key with a weak reference to value.
func (m *WeakValueMap[K, V]) Put(key K, value *V) {
	m.scavenge()
	m.entries[key] = weak.Make(value)
	runtime.AddCleanup(value, bumpCleared, &m.cleared)
}

// Get returns the value for key, or nil/false when absent or already
// collected.
func (m *WeakValueMap[K, V]) Get(key K) (*V, bool) {
	ref, found := m.entries[key]
	if !found {
		return nil, false
	}
	value := ref.Value()
	return value, value != nil
}

// Remove deletes the entry for key, returning the value if it was still
// live.
func (m *WeakValueMap[K, V]) Remove(key K) (*V, bool) {
	m.scavenge()
	ref, found := m.entries[key]
	if !found {
		return nil, false
	}
	delete(m.entries, key)
	value := ref.Value()
	return value, value != nil
}

// Len counts the live entries.
func (m *WeakValueMap[K, V]) Len() int {
	n := 0
	for _, ref := range m.entries {
		if ref.Value() != nil {
			n++
		}
	}
	return n
}

// Clear removes all entries.
func (m *WeakValueMap[K, V]) Clear() {
	m.entries = make(map[K]weak.Pointer[V])
}

// Range calls fn for each live entry, stopping early when fn returns
// false.
func (m *WeakValueMap[K, V]) Range(fn func(key K, value *V) bool) {
	for key, ref := range m.entries {
		value := ref.Value()
		if value == nil {
			continue
		}
		if !fn(key, value) {
			return
		}
	}
}

// Keys returns the keys of the live entries.
func (m *WeakValueMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for key, ref := range m.entries {
		if ref.Value() != nil {
			keys = append(keys, key)
		}
	}
	return keys
}

func (m *WeakValueMap[K, V]) scavenge() {
	if m.cleared.Swap(0) == 0 {
		return
	}
	for key, ref := range m.entries {
		if ref.Value() == nil {
			delete(m.entries, key)
		}
	}
}

// WeakKeyMap maps weakly held keys to strong values: extra metadata
// attached to an object without extending its lifetime. Keys are
// compared by referent identity.
type WeakKeyMap[K any, V any] struct {
	entries map[weak.Pointer[K]]V
	cleared atomic.Int64
}

// NewWeakKeyMap creates an empty weak-keyed map.
func NewWeakKeyMap[K any, V any]() *WeakKeyMap[K, V] {
	return &WeakKeyMap[K, V]{entries: make(map[weak.Pointer[K]]V)}
}

// Put associates a weak reference to key with value.
func (m *WeakKeyMap[K, V]) Put(key *K, value V) {
	m.scavenge()
	m.entries[weak.Make(key)] = value
	runtime.AddCleanup(key, bumpCleared, &m.cleared)
}

// Get returns the value attached to key.
func (m *WeakKeyMap[K, V]) Get(key *K) (V, bool) {
	value, found := m.entries[weak.Make(key)]
	return value, found
}

// Remove deletes the entry for key, returning its value if present.
func (m *WeakKeyMap[K, V]) Remove(key *K) (V, bool) {
	m.scavenge()
	ref := weak.Make(key)
	value, found := m.entries[ref]
	if found {
		delete(m.entries, ref)
	}
	return value, found
}

// Len counts the entries whose keys are still live.
func (m *WeakKeyMap[K, V]) Len() int {
	n := 0
	for ref := range m.entries {
		if ref.Value() != nil {
			n++
		}
	}
	return n
}

// Clear removes all entries.
func (m *WeakKeyMap[K, V]) Clear() {
	m.entries = make(map[weak.Pointer[K]]V)
}

// Range calls fn for each entry with a live key, stopping early when fn
// returns false.
func (m *WeakKeyMap[K, V]) Range(fn func(key *K, value V) bool) {
	for ref, value := range m.entries {
		key := ref.Value()
		if key == nil {
			continue
		}
		if !fn(key, value) {
			return
		}
	}
}

func (m *WeakKeyMap[K, V]) scavenge() {
	if m.cleared.Swap(0) == 0 {
		return
	}
	for ref := range m.entries {
		if ref.Value() == nil {
			delete(m.entries, ref)
		}
	}
}

// WeakSet holds its members weakly, compared by referent identity.
type WeakSet[T any] struct {
	members map[weak.Pointer[T]]struct{}
	cleared atomic.Int64
}

// NewWeakSet creates an empty weak set.
func NewWeakSet[T any]() *WeakSet[T] {
	return &WeakSet[T]{members: make(map[weak.Pointer[T]]struct{})}
}

// Add inserts value and reports whether it was not already present.
func (s *WeakSet[T]) Add(value *T) bool {
	s.scavenge()
	ref := weak.Make(value)
	if _, found := s.members[ref]; found {
		return false
	}
	s.members[ref] = struct{}{}
	runtime.AddCleanup(value, bumpCleared, &s.cleared)
	return true
}

// Remove deletes value and reports whether it was present.
func (s *WeakSet[T]) Remove(value *T) bool {
	s.scavenge()
	ref := weak.Make(value)
	if _, found := s.members[ref]; !found {
		return false
	}
	delete(s.members, ref)
	return true
}

// Contains reports whether value is present.
func (s *WeakSet[T]) Contains(value *T) bool {
	_, found := s.members[weak.Make(value)]
	return found
}

// Len counts the live members.
func (s *WeakSet[T]) Len() int {
	n := 0
	for ref := range s.members {
		if ref.Value() != nil {
			n++
		}
	}
	return n
}

// Clear removes all members.
func (s *WeakSet[T]) Clear() {
	s.members = make(map[weak.Pointer[T]]struct{})
}

// Values returns the live members.
func (s *WeakSet[T]) Values() []*T {
	values := make([]*T, 0, len(s.members))
	for ref := range s.members {
		if value := ref.Value(); value != nil {
			values = append(values, value)
		}
	}
	return values
}

func (s *WeakSet[T]) scavenge() {
	if s.cleared.Swap(0) == 0 {
		return
	}
	for ref := range s.members {
		if ref.Value() == nil {
			delete(s.members, ref)
		}
	}
}

// bumpCleared records one reclamation. Runs on the runtime's cleanup
// goroutine, so it only touches the atomic counter.
func bumpCleared(cleared *atomic.Int64) {
	cleared.Add(1)
}
