package gocollect

import "sync"

// SyncList wraps a plain List so that every operation is atomic under a
// single per-adapter mutex.
//
// The wrapped list is exclusively owned by the adapter once wrapped;
// mutating it through any other reference voids the atomicity contract.
type SyncList[T any] struct {
	mu sync.Mutex
	l  List[T]
}

// NewSyncList wraps the given list in a synchronizing adapter.
// Panics if wrapped is nil.
func NewSyncList[T any](wrapped List[T]) *SyncList[T] {
	if wrapped == nil {
		panic("gocollect: NewSyncList: wrapped list is nil")
	}
	return &SyncList[T]{l: wrapped}
}

// NewSyncArrayList creates a synchronized adapter over a fresh
// array-backed list.
func NewSyncArrayList[T any]() *SyncList[T] {
	return NewSyncList(NewArrayList[T]())
}

// Add appends value to the list.
func (s *SyncList[T]) Add(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Add(value)
}

// Get returns the element at index, if valid.
func (s *SyncList[T]) Get(index int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Get(index)
}

// Set replaces the element at index and reports whether index was valid.
func (s *SyncList[T]) Set(index int, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Set(index, value)
}

// Insert places value at index, shifting later elements.
func (s *SyncList[T]) Insert(index int, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Insert(index, value)
}

// RemoveAt deletes and returns the element at index, if valid.
func (s *SyncList[T]) RemoveAt(index int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAt(index)
}

// Len returns the number of elements.
func (s *SyncList[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Len()
}

// IsEmpty reports whether the list has no elements.
func (s *SyncList[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.IsEmpty()
}

// Clear removes all elements.
func (s *SyncList[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

// Values returns a snapshot of the elements.
func (s *SyncList[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Values()
}

// Range calls fn with each index and element while holding the adapter
// lock, stopping early when fn returns false. fn must not call back into
// the adapter.
func (s *SyncList[T]) Range(fn func(index int, value T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.l.Values() {
		if !fn(i, v) {
			return
		}
	}
}

// Iterate grants fn a cursor over the wrapped list while holding the
// adapter lock for the whole call; the cursor supports Remove, Set and
// Add and must not be retained after fn returns. fn must not call back
// into the adapter.
func (s *SyncList[T]) Iterate(fn func(it ListIterator[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.l.ListIterator(0))
}
