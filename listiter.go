package gocollect

import "github.com/pkg/errors"

// listIterator is a positional cursor over any List. cursor is the index
// of the element the next Next call returns; last tracks the element most
// recently produced (-1 when there is none to remove or replace).
type listIterator[T any] struct {
	list   List[T]
	cursor int
	last   int
}

func newListIterator[T any](list List[T], index int) *listIterator[T] {
	checkCursorIndex(list, index)
	return &listIterator[T]{list: list, cursor: index, last: -1}
}

func (it *listIterator[T]) HasNext() bool {
	return it.cursor < it.list.Len()
}

func (it *listIterator[T]) Next() (T, error) {
	if it.cursor >= it.list.Len() {
		var zero T
		return zero, errors.Wrap(ErrNoSuchElement, "Next past end of iterator")
	}
	value, _ := it.list.Get(it.cursor)
	it.last = it.cursor
	it.cursor++
	return value, nil
}

func (it *listIterator[T]) HasPrevious() bool {
	return it.cursor > 0
}

func (it *listIterator[T]) Previous() (T, error) {
	if it.cursor <= 0 {
		var zero T
		return zero, errors.Wrap(ErrNoSuchElement, "Previous before start of iterator")
	}
	it.cursor--
	it.last = it.cursor
	value, _ := it.list.Get(it.cursor)
	return value, nil
}

func (it *listIterator[T]) NextIndex() int {
	return it.cursor
}

func (it *listIterator[T]) PreviousIndex() int {
	return it.cursor - 1
}

func (it *listIterator[T]) Remove() error {
	if it.last < 0 {
		return errors.Wrap(ErrInvalidState, "Remove without a current element")
	}
	it.list.RemoveAt(it.last)
	if it.last < it.cursor {
		it.cursor--
	}
	it.last = -1
	return nil
}

func (it *listIterator[T]) Set(value T) error {
	if it.last < 0 {
		return errors.Wrap(ErrInvalidState, "Set without a current element")
	}
	it.list.Set(it.last, value)
	return nil
}

func (it *listIterator[T]) Add(value T) error {
	it.list.Insert(it.cursor, value)
	it.cursor++
	it.last = -1
	return nil
}
