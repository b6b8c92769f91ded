package gocollect

import "sync"

// SyncMap wraps a plain Map so that every operation, including compound
// ones, is atomic under a single per-adapter mutex. The compound surface
// follows the sync.Map contract (Load, Store, LoadOrStore, Swap,
// CompareAndSwap, ...).
//
// The wrapped map is exclusively owned by the adapter once wrapped;
// mutating it through any other reference voids the atomicity contract.
type SyncMap[K comparable, V any] struct {
	mu sync.Mutex
	m  Map[K, V]
}

// NewSyncMap wraps the given map in a synchronizing adapter.
// Panics if wrapped is nil.
func NewSyncMap[K comparable, V any](wrapped Map[K, V]) *SyncMap[K, V] {
	if wrapped == nil {
		panic("gocollect: NewSyncMap: wrapped map is nil")
	}
	return &SyncMap[K, V]{m: wrapped}
}

// NewSyncHashMap creates a synchronized adapter over a fresh hash map.
func NewSyncHashMap[K comparable, V any]() *SyncMap[K, V] {
	return NewSyncMap(NewHashMap[K, V]())
}

// Load returns the value stored for key, if any.
func (s *SyncMap[K, V]) Load(key K) (value V, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Get(key)
}

// Store sets the value for key.
func (s *SyncMap[K, V]) Store(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Put(key, value)
}

// Swap stores value for key and returns the previous value, if any.
func (s *SyncMap[K, V]) Swap(key K, value V) (previous V, loaded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Put(key, value)
}

// LoadOrStore returns the existing value for key if present. Otherwise it
// stores and returns the given value. loaded is true if the value was
// already present.
func (s *SyncMap[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, found := s.m.Get(key); found {
		return existing, true
	}
	s.m.Put(key, value)
	return value, false
}

// LoadAndDelete deletes the value for key, returning it if present.
func (s *SyncMap[K, V]) LoadAndDelete(key K) (value V, loaded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Remove(key)
}

// Delete removes the value for key.
func (s *SyncMap[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Remove(key)
}

// CompareAndSwap swaps the old and new values for key if the stored value
// equals old. The old value must be of a comparable type; otherwise the
// comparison panics, as with sync.Map.
func (s *SyncMap[K, V]) CompareAndSwap(key K, old, new V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, found := s.m.Get(key)
	if !found || any(current) != any(old) {
		return false
	}
	s.m.Put(key, new)
	return true
}

// CompareAndDelete deletes the entry for key if its value equals old.
// The old value must be of a comparable type; otherwise the comparison
// panics, as with sync.Map.
func (s *SyncMap[K, V]) CompareAndDelete(key K, old V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, found := s.m.Get(key)
	if !found || any(current) != any(old) {
		return false
	}
	s.m.Remove(key)
	return true
}

// ContainsKey reports whether key is present.
func (s *SyncMap[K, V]) ContainsKey(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.ContainsKey(key)
}

// Len returns the number of entries.
func (s *SyncMap[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Len()
}

// IsEmpty reports whether the map has no entries.
func (s *SyncMap[K, V]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.IsEmpty()
}

// Clear removes all entries.
func (s *SyncMap[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Clear()
}

// Keys returns a snapshot of the keys.
func (s *SyncMap[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Keys()
}

// Values returns a snapshot of the values.
func (s *SyncMap[K, V]) Values() []V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Values()
}

// Range calls fn for each entry while holding the adapter lock, stopping
// early when fn returns false. fn must not call back into the adapter.
func (s *SyncMap[K, V]) Range(fn func(key K, value V) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.m.Entries() {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// Iterate grants fn a cursor over the wrapped map while holding the
// adapter lock for the whole call; the cursor supports Remove and must
// not be retained after fn returns. fn must not call back into the
// adapter.
func (s *SyncMap[K, V]) Iterate(fn func(it Iterator[Entry[K, V]])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.m.Iterator())
}
