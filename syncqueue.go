package gocollect

import (
	"sync"
	"time"
)

// SyncQueue wraps a plain Queue so that every operation is atomic under a
// single per-adapter mutex, and adds blocking and bounded-wait insert and
// remove. With WithCapacity the queue is bounded: Offer reports false
// when full, and Put/OfferTimeout wait for space.
//
// Timed-out waits are normal "did not complete" results, never errors.
//
// The wrapped queue is exclusively owned by the adapter once wrapped;
// mutating it through any other reference voids the atomicity contract.
type SyncQueue[T any] struct {
	mu       sync.Mutex
	q        Queue[T]
	capacity int

	// Broadcast channels: waiters grab the current channel under the lock
	// and block on it; state changes close and replace it, waking every
	// waiter to recheck.
	notEmpty chan struct{}
	notFull  chan struct{}
}

// SyncQueueOption configures a SyncQueue.
type SyncQueueOption func(capacity *int)

// WithCapacity bounds the queue to at most n elements. n must be
// positive.
func WithCapacity(n int) SyncQueueOption {
	if n <= 0 {
		panic("gocollect: WithCapacity: capacity must be positive")
	}
	return func(capacity *int) {
		*capacity = n
	}
}

// NewSyncQueue wraps the given queue in a synchronizing adapter.
// Panics if wrapped is nil.
func NewSyncQueue[T any](wrapped Queue[T], opts ...SyncQueueOption) *SyncQueue[T] {
	if wrapped == nil {
		panic("gocollect: NewSyncQueue: wrapped queue is nil")
	}
	q := &SyncQueue[T]{
		q:        wrapped,
		notEmpty: make(chan struct{}),
		notFull:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(&q.capacity)
	}
	return q
}

// NewBlockingQueue creates a capacity-bounded blocking queue over a fresh
// FIFO queue.
func NewBlockingQueue[T any](capacity int) *SyncQueue[T] {
	return NewSyncQueue(NewQueue[T](), WithCapacity(capacity))
}

// Capacity returns the bound, or 0 when the queue is unbounded.
func (s *SyncQueue[T]) Capacity() int {
	return s.capacity
}

func (s *SyncQueue[T]) full() bool {
	return s.capacity > 0 && s.q.Len() >= s.capacity
}

// broadcast wakes every goroutine waiting on *ch. Callers must hold mu.
func broadcast(ch *chan struct{}) {
	close(*ch)
	*ch = make(chan struct{})
}

// Offer appends value without waiting, reporting false when the queue is
// full.
func (s *SyncQueue[T]) Offer(value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.full() {
		return false
	}
	s.q.Offer(value)
	broadcast(&s.notEmpty)
	return true
}

// Poll removes and returns the head without waiting.
func (s *SyncQueue[T]) Poll() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.q.Poll()
	if ok {
		broadcast(&s.notFull)
	}
	return value, ok
}

// Peek returns the head without removing it.
func (s *SyncQueue[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Peek()
}

// Len returns the number of queued elements.
func (s *SyncQueue[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Len()
}

// IsEmpty reports whether the queue has no elements.
func (s *SyncQueue[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.IsEmpty()
}

// Clear removes all queued elements, freeing space for blocked inserters.
func (s *SyncQueue[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.q.Clear()
	broadcast(&s.notFull)
}

// Put appends value, waiting as long as necessary for space.
func (s *SyncQueue[T]) Put(value T) {
	s.mu.Lock()
	for {
		if !s.full() {
			s.q.Offer(value)
			broadcast(&s.notEmpty)
			s.mu.Unlock()
			return
		}
		wait := s.notFull
		s.mu.Unlock()
		<-wait
		s.mu.Lock()
	}
}

// Take removes and returns the head, waiting as long as necessary for an
// element.
func (s *SyncQueue[T]) Take() T {
	s.mu.Lock()
	for {
		if value, ok := s.q.Poll(); ok {
			broadcast(&s.notFull)
			s.mu.Unlock()
			return value
		}
		wait := s.notEmpty
		s.mu.Unlock()
		<-wait
		s.mu.Lock()
	}
}

// OfferTimeout appends value, waiting up to timeout for space. It reports
// false when no space became available within the bound.
func (s *SyncQueue[T]) OfferTimeout(value T, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	s.mu.Lock()
	for {
		if !s.full() {
			s.q.Offer(value)
			broadcast(&s.notEmpty)
			s.mu.Unlock()
			return true
		}
		wait := s.notFull
		s.mu.Unlock()
		if !waitUntil(wait, deadline) {
			return false
		}
		s.mu.Lock()
	}
}

// PollTimeout removes and returns the head, waiting up to timeout for an
// element. It reports false when no element arrived within the bound.
func (s *SyncQueue[T]) PollTimeout(timeout time.Duration) (T, bool) {
	deadline := time.Now().Add(timeout)
	s.mu.Lock()
	for {
		if value, ok := s.q.Poll(); ok {
			broadcast(&s.notFull)
			s.mu.Unlock()
			return value, true
		}
		wait := s.notEmpty
		s.mu.Unlock()
		if !waitUntil(wait, deadline) {
			var zero T
			return zero, false
		}
		s.mu.Lock()
	}
}

// waitUntil blocks on wakeup until the deadline, reporting whether a
// wakeup arrived in time.
func waitUntil(wakeup <-chan struct{}, deadline time.Time) bool {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return false
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-wakeup:
		return true
	case <-timer.C:
		return false
	}
}
