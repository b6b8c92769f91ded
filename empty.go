package gocollect

import "github.com/pkg/errors"

// The empty views are stateless zero-width values, so every call site
// shares what is effectively a single instance per element type, safe to
// use from any number of goroutines.

type emptyIterable[T any] struct{}

type emptyIterator[T any] struct{}

// EmptyIterable returns the iterable with no elements.
func EmptyIterable[T any]() Iterable[T] {
	return emptyIterable[T]{}
}

// EmptyIterator returns the exhausted iterator.
func EmptyIterator[T any]() Iterator[T] {
	return emptyIterator[T]{}
}

func (emptyIterable[T]) Iterator() Iterator[T] {
	return emptyIterator[T]{}
}

func (emptyIterator[T]) HasNext() bool {
	return false
}

func (emptyIterator[T]) Next() (T, error) {
	var zero T
	return zero, errors.Wrap(ErrNoSuchElement, "Next past end of iterator")
}

func (emptyIterator[T]) Remove() error {
	return errors.Wrap(ErrInvalidState, "Next has not yet been called")
}
