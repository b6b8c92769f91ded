package gocollect

import (
	"runtime"
	"sync"
	"weak"
)

// Concurrent weak containers. Safety is intrinsic: each container guards
// its state with an internal lock and needs no external synchronization,
// and reclamation removes entries eagerly from the runtime's cleanup
// goroutine under the same lock.

// ConcurrentWeakKeyMap is a concurrency-safe map with weakly held keys
// (compared by referent identity) and strongly held values.
type ConcurrentWeakKeyMap[K any, V any] struct {
	mu      sync.RWMutex
	entries map[weak.Pointer[K]]V
}

// NewConcurrentWeakKeyMap creates an empty concurrent weak-keyed map.
func NewConcurrentWeakKeyMap[K any, V any]() *ConcurrentWeakKeyMap[K, V] {
	return &ConcurrentWeakKeyMap[K, V]{entries: make(map[weak.Pointer[K]]V)}
}

// KeyStrength reports how keys are held.
func (m *ConcurrentWeakKeyMap[K, V]) KeyStrength() RefStrength { return RefWeak }

// ValueStrength reports how values are held.
func (m *ConcurrentWeakKeyMap[K, V]) ValueStrength() RefStrength { return RefStrong }

// Put associates a weak reference to key with value.
func (m *ConcurrentWeakKeyMap[K, V]) Put(key *K, value V) {
	ref := weak.Make(key)
	m.mu.Lock()
	m.entries[ref] = value
	m.mu.Unlock()
	runtime.AddCleanup(key, m.dropKey, ref)
}

// Get returns the value attached to key.
func (m *ConcurrentWeakKeyMap[K, V]) Get(key *K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, found := m.entries[weak.Make(key)]
	return value, found
}

// PutIfAbsent attaches value to key only when no entry exists, returning
// the attached value. loaded is true if a value was already present.
func (m *ConcurrentWeakKeyMap[K, V]) PutIfAbsent(key *K, value V) (actual V, loaded bool) {
	ref := weak.Make(key)
	m.mu.Lock()
	if existing, found := m.entries[ref]; found {
		m.mu.Unlock()
		return existing, true
	}
	m.entries[ref] = value
	m.mu.Unlock()
	runtime.AddCleanup(key, m.dropKey, ref)
	return value, false
}

// Remove deletes the entry for key, returning its value if present.
func (m *ConcurrentWeakKeyMap[K, V]) Remove(key *K) (V, bool) {
	ref := weak.Make(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	value, found := m.entries[ref]
	if found {
		delete(m.entries, ref)
	}
	return value, found
}

// Len counts the entries whose keys are still live.
func (m *ConcurrentWeakKeyMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for ref := range m.entries {
		if ref.Value() != nil {
			n++
		}
	}
	return n
}

// Clear removes all entries.
func (m *ConcurrentWeakKeyMap[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
}

// Range calls fn for each entry with a live key, stopping early when fn
// returns false. fn must not call back into the map.
func (m *ConcurrentWeakKeyMap[K, V]) Range(fn func(key *K, value V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
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

func (m *ConcurrentWeakKeyMap[K, V]) dropKey(ref weak.Pointer[K]) {
	m.mu.Lock()
	delete(m.entries, ref)
	m.mu.Unlock()
}

// ConcurrentWeakValueMap is a concurrency-safe map with strongly held
// keys and weakly held values.
type ConcurrentWeakValueMap[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]weak.Pointer[V]
}

// NewConcurrentWeakValueMap creates an empty concurrent weak-valued map.
func NewConcurrentWeakValueMap[K comparable, V any]() *ConcurrentWeakValueMap[K, V] {
	return &ConcurrentWeakValueMap[K, V]{entries: make(map[K]weak.Pointer[V])}
}

// KeyStrength reports how keys are held.
func (m *ConcurrentWeakValueMap[K, V]) KeyStrength() RefStrength { return RefStrong }

// ValueStrength reports how values are held.
func (m *ConcurrentWeakValueMap[K, V]) ValueStrength() RefStrength { return RefWeak }

// Put associates key with a weak reference to value.
func (m *ConcurrentWeakValueMap[K, V]) Put(key K, value *V) {
	m.mu.Lock()
	m.entries[key] = weak.Make(value)
	m.mu.Unlock()
	runtime.AddCleanup(value, m.dropValue, key)
}

// Get returns the value for key, or nil/false when absent or already
// collected.
func (m *ConcurrentWeakValueMap[K, V]) Get(key K) (*V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ref, found := m.entries[key]
	if !found {
		return nil, false
	}
	value := ref.Value()
	return value, value != nil
}

// PutIfAbsent stores value for key only when no live entry exists,
// returning the live value. loaded is true if a live value was already
// present.
func (m *ConcurrentWeakValueMap[K, V]) PutIfAbsent(key K, value *V) (actual *V, loaded bool) {
	m.mu.Lock()
	if ref, found := m.entries[key]; found {
		if existing := ref.Value(); existing != nil {
			m.mu.Unlock()
			return existing, true
		}
	}
	m.entries[key] = weak.Make(value)
	m.mu.Unlock()
	runtime.AddCleanup(value, m.dropValue, key)
	return value, false
}

// Remove deletes the entry for key, returning the value if it was still
// live.
func (m *ConcurrentWeakValueMap[K, V]) Remove(key K) (*V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ref, found := m.entries[key]
	if !found {
		return nil, false
	}
	delete(m.entries, key)
	value := ref.Value()
	return value, value != nil
}

// Len counts the live entries.
func (m *ConcurrentWeakValueMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, ref := range m.entries {
		if ref.Value() != nil {
			n++
		}
	}
	return n
}

// Clear removes all entries.
func (m *ConcurrentWeakValueMap[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
}

// Range calls fn for each live entry, stopping early when fn returns
// false. fn must not call back into the map.
func (m *ConcurrentWeakValueMap[K, V]) Range(fn func(key K, value *V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
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
func (m *ConcurrentWeakValueMap[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]K, 0, len(m.entries))
	for key, ref := range m.entries {
		if ref.Value() != nil {
			keys = append(keys, key)
		}
	}
	return keys
}

// dropValue runs on the runtime's cleanup goroutine once a value is
// collected. The staleness check keeps it from deleting an entry that
// was re-put with a live value in the meantime.
func (m *ConcurrentWeakValueMap[K, V]) dropValue(key K) {
	m.mu.Lock()
	if ref, found := m.entries[key]; found && ref.Value() == nil {
		delete(m.entries, key)
	}
	m.mu.Unlock()
}

// ConcurrentWeakSet is a concurrency-safe set holding its members weakly,
// compared by referent identity.
type ConcurrentWeakSet[T any] struct {
	mu      sync.RWMutex
	members map[weak.Pointer[T]]struct{}
}

// NewConcurrentWeakSet creates an empty concurrent weak set.
func NewConcurrentWeakSet[T any]() *ConcurrentWeakSet[T] {
	return &ConcurrentWeakSet[T]{members: make(map[weak.Pointer[T]]struct{})}
}

// Add inserts value and reports whether it was not already present.
func (s *ConcurrentWeakSet[T]) Add(value *T) bool {
	ref := weak.Make(value)
	s.mu.Lock()
	if _, found := s.members[ref]; found {
		s.mu.Unlock()
		return false
	}
	s.members[ref] = struct{}{}
	s.mu.Unlock()
	runtime.AddCleanup(value, s.dropMember, ref)
	return true
}

// Remove deletes value and reports whether it was present.
func (s *ConcurrentWeakSet[T]) Remove(value *T) bool {
	ref := weak.Make(value)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.members[ref]; !found {
		return false
	}
	delete(s.members, ref)
	return true
}

// Contains reports whether value is present.
func (s *ConcurrentWeakSet[T]) Contains(value *T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, found := s.members[weak.Make(value)]
	return found
}

// Len counts the live members.
func (s *ConcurrentWeakSet[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for ref := range s.members {
		if ref.Value() != nil {
			n++
		}
	}
	return n
}

// Clear removes all members.
func (s *ConcurrentWeakSet[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.members)
}

// Values returns the live members.
func (s *ConcurrentWeakSet[T]) Values() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make([]*T, 0, len(s.members))
	for ref := range s.members {
		if value := ref.Value(); value != nil {
			values = append(values, value)
		}
	}
	return values
}

func (s *ConcurrentWeakSet[T]) dropMember(ref weak.Pointer[T]) {
	s.mu.Lock()
	delete(s.members, ref)
	s.mu.Unlock()
}
