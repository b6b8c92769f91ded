package gocollect

import "sync"

// SyncSet wraps a plain Set so that every operation is atomic under a
// single per-adapter mutex.
//
// The wrapped set is exclusively owned by the adapter once wrapped;
// mutating it through any other reference voids the atomicity contract.
type SyncSet[T comparable] struct {
	mu sync.Mutex
	s  Set[T]
}

// NewSyncSet wraps the given set in a synchronizing adapter.
// Panics if wrapped is nil.
func NewSyncSet[T comparable](wrapped Set[T]) *SyncSet[T] {
	if wrapped == nil {
		panic("gocollect: NewSyncSet: wrapped set is nil")
	}
	return &SyncSet[T]{s: wrapped}
}

// NewSyncHashSet creates a synchronized adapter over a fresh hash set.
func NewSyncHashSet[T comparable]() *SyncSet[T] {
	return NewSyncSet(NewHashSet[T]())
}

// Add inserts value and reports whether it was not already present. The
// check and the insert are a single atomic step.
func (s *SyncSet[T]) Add(value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Add(value)
}

// Remove deletes value and reports whether it was present.
func (s *SyncSet[T]) Remove(value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Remove(value)
}

// Contains reports whether value is present.
func (s *SyncSet[T]) Contains(value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Contains(value)
}

// Len returns the number of elements.
func (s *SyncSet[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *SyncSet[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.IsEmpty()
}

// Clear removes all elements.
func (s *SyncSet[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Clear()
}

// Values returns a snapshot of the elements.
func (s *SyncSet[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Values()
}

// Range calls fn for each element while holding the adapter lock,
// stopping early when fn returns false. fn must not call back into the
// adapter.
func (s *SyncSet[T]) Range(fn func(value T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.s.Values() {
		if !fn(v) {
			return
		}
	}
}

// Iterate grants fn a cursor over the wrapped set while holding the
// adapter lock for the whole call; the cursor supports Remove and must
// not be retained after fn returns. fn must not call back into the
// adapter.
func (s *SyncSet[T]) Iterate(fn func(it Iterator[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.s.Iterator())
}
