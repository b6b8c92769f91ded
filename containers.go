package gocollect

import "github.com/pkg/errors"

// Entry is an immutable key/value pair. It is a plain value; copies are
// independent and the pair itself cannot be mutated through a map view.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// MapEntry creates an immutable map entry.
func MapEntry[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// Iterator is a forward-only cursor over a sequence of elements.
//
// HasNext is idempotent. Next reports ErrNoSuchElement once the cursor is
// exhausted; after a successful HasNext, the following Next cannot fail.
// Remove removes the element most recently returned by Next and reports
// ErrInvalidState when no such element exists, or ErrUnsupported when the
// view disallows removal.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	Remove() error
}

// ListIterator is a bidirectional cursor with positional insertion.
// Indexes follow the usual list-cursor convention: NextIndex is the index
// of the element a Next call would return, PreviousIndex is NextIndex-1.
type ListIterator[T any] interface {
	Iterator[T]
	HasPrevious() bool
	Previous() (T, error)
	NextIndex() int
	PreviousIndex() int

	// Set replaces the element most recently returned by Next or Previous.
	Set(value T) error

	// Add inserts value at the cursor position, before the element a Next
	// call would return.
	Add(value T) error
}

// Iterable is anything that can produce a cursor over its elements.
// Whether repeated Iterator calls restart the sequence depends on the
// implementation; one-shot views document themselves as such.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// Map is a mutable key/value container.
type Map[K comparable, V any] interface {
	// Put associates value with key and returns the previous value, if any.
	Put(key K, value V) (previous V, replaced bool)
	Get(key K) (value V, found bool)
	// Remove deletes the mapping for key and returns the removed value.
	Remove(key K) (removed V, found bool)
	ContainsKey(key K) bool
	Len() int
	IsEmpty() bool
	Clear()
	Keys() []K
	Values() []V
	Entries() []Entry[K, V]
	// Iterator returns a cursor over a snapshot of the entries; Remove
	// deletes the current entry from the map.
	Iterator() Iterator[Entry[K, V]]
}

// Set is a mutable container of unique elements.
type Set[T comparable] interface {
	// Add inserts value and reports whether it was not already present.
	Add(value T) bool
	// Remove deletes value and reports whether it was present.
	Remove(value T) bool
	Contains(value T) bool
	Len() int
	IsEmpty() bool
	Clear()
	Values() []T
	Iterator() Iterator[T]
}

// List is a mutable ordered container with positional access.
type List[T any] interface {
	Add(value T)
	Get(index int) (T, bool)
	// Set replaces the element at index and reports whether index was valid.
	Set(index int, value T) bool
	// Insert places value at index, shifting later elements; index may be
	// Len() to append.
	Insert(index int, value T) bool
	RemoveAt(index int) (T, bool)
	Len() int
	IsEmpty() bool
	Clear()
	Values() []T
	Iterator() Iterator[T]
	// ListIterator returns a bidirectional cursor positioned so that the
	// first Next call returns the element at index. Panics if index is
	// outside [0, Len()].
	ListIterator(index int) ListIterator[T]
}

// Queue is a FIFO container.
type Queue[T any] interface {
	// Offer appends value and reports whether the queue accepted it.
	Offer(value T) bool
	// Poll removes and returns the head, if any.
	Poll() (T, bool)
	Peek() (T, bool)
	Len() int
	IsEmpty() bool
	Clear()
}

// entryIterator is a snapshot cursor over map entries. remove, when
// non-nil, deletes the given key from the backing map.
type entryIterator[K comparable, V any] struct {
	entries []Entry[K, V]
	pos     int
	last    int
	remove  func(K)
}

func newEntryIterator[K comparable, V any](entries []Entry[K, V], remove func(K)) *entryIterator[K, V] {
	return &entryIterator[K, V]{entries: entries, last: -1, remove: remove}
}

func (it *entryIterator[K, V]) HasNext() bool {
	return it.pos < len(it.entries)
}

func (it *entryIterator[K, V]) Next() (Entry[K, V], error) {
	if it.pos >= len(it.entries) {
		return Entry[K, V]{}, errors.Wrap(ErrNoSuchElement, "Next past end of iterator")
	}
	it.last = it.pos
	it.pos++
	return it.entries[it.last], nil
}

func (it *entryIterator[K, V]) Remove() error {
	if it.last < 0 {
		return errors.Wrap(ErrInvalidState, "Remove without a current element")
	}
	if it.remove == nil {
		return errors.Wrap(ErrUnsupported, "Remove through an immutable view")
	}
	it.remove(it.entries[it.last].Key)
	it.last = -1
	return nil
}

// sliceIterator is a snapshot cursor over a slice of values. remove, when
// non-nil, deletes the given value from the backing container.
type sliceIterator[T any] struct {
	values []T
	pos    int
	last   int
	remove func(T)
}

func newSliceIterator[T any](values []T, remove func(T)) *sliceIterator[T] {
	return &sliceIterator[T]{values: values, last: -1, remove: remove}
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.pos < len(it.values)
}

func (it *sliceIterator[T]) Next() (T, error) {
	if it.pos >= len(it.values) {
		var zero T
		return zero, errors.Wrap(ErrNoSuchElement, "Next past end of iterator")
	}
	it.last = it.pos
	it.pos++
	return it.values[it.last], nil
}

func (it *sliceIterator[T]) Remove() error {
	if it.last < 0 {
		return errors.Wrap(ErrInvalidState, "Remove without a current element")
	}
	if it.remove == nil {
		return errors.Wrap(ErrUnsupported, "Remove through an immutable view")
	}
	it.remove(it.values[it.last])
	it.last = -1
	return nil
}
