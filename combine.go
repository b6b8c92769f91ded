package gocollect

import "github.com/pkg/errors"

// combinedIterator yields every element of current, then every element of
// next. An exhausted input is discarded and never polled again, which
// matters when inputs are stateful or one-shot.
type combinedIterator[T any] struct {
	current Iterator[T]
	next    Iterator[T]
}

// Combine merges two iterators into one that yields all of first, then
// all of second. Panics if either input is nil.
func Combine[T any](first, second Iterator[T]) Iterator[T] {
	if first == nil {
		panic("gocollect: Combine: first is nil")
	}
	if second == nil {
		panic("gocollect: Combine: second is nil")
	}
	return &combinedIterator[T]{current: first, next: second}
}

// Combine3 merges three iterators, pairing as Combine(Combine(a,b),c).
func Combine3[T any](first, second, third Iterator[T]) Iterator[T] {
	return Combine(Combine(first, second), third)
}

// Combine4 merges four iterators, pairing as
// Combine(Combine(a,b), Combine(c,d)).
func Combine4[T any](first, second, third, fourth Iterator[T]) Iterator[T] {
	return Combine(Combine(first, second), Combine(third, fourth))
}

func (c *combinedIterator[T]) HasNext() bool {
	if c.current == nil {
		return false
	}
	if !c.current.HasNext() {
		c.current = c.next
		c.next = nil
	}
	return c.current != nil && c.current.HasNext()
}

func (c *combinedIterator[T]) Next() (T, error) {
	if c.current == nil {
		var zero T
		return zero, errors.Wrap(ErrNoSuchElement, "Next past end of iterator")
	}
	return c.current.Next()
}

// Remove forwards to whichever input currently owns the cursor position.
func (c *combinedIterator[T]) Remove() error {
	if c.current == nil {
		return errors.Wrap(ErrInvalidState, "Remove without a current element")
	}
	return c.current.Remove()
}

// combinedIterable defers combination until iteration begins, so each
// Iterator call draws fresh cursors from both inputs.
type combinedIterable[T any] struct {
	first  Iterable[T]
	second Iterable[T]
}

// CombineIterable merges two iterables into one that yields all of first,
// then all of second. Panics if either input is nil.
func CombineIterable[T any](first, second Iterable[T]) Iterable[T] {
	if first == nil {
		panic("gocollect: CombineIterable: first is nil")
	}
	if second == nil {
		panic("gocollect: CombineIterable: second is nil")
	}
	return &combinedIterable[T]{first: first, second: second}
}

// CombineIterable3 merges three iterables, pairing as
// CombineIterable(CombineIterable(a,b),c).
func CombineIterable3[T any](first, second, third Iterable[T]) Iterable[T] {
	return CombineIterable(CombineIterable(first, second), third)
}

// CombineIterable4 merges four iterables, pairing as
// CombineIterable(CombineIterable(a,b), CombineIterable(c,d)).
func CombineIterable4[T any](first, second, third, fourth Iterable[T]) Iterable[T] {
	return CombineIterable(CombineIterable(first, second), CombineIterable(third, fourth))
}

func (c *combinedIterable[T]) Iterator() Iterator[T] {
	return Combine(c.first.Iterator(), c.second.Iterator())
}
