package gocollect

// reverseListIterator swaps the forward and backward directions of the
// cursor it wraps.
type reverseListIterator[T any] struct {
	original ListIterator[T]
}

// Reverse returns a view of original with forward and backward swapped.
// Reversing an already-reversed cursor returns the original cursor
// itself, not a doubly wrapped one. Panics if original is nil.
func Reverse[T any](original ListIterator[T]) ListIterator[T] {
	if original == nil {
		panic("gocollect: Reverse: iterator is nil")
	}
	if r, ok := original.(*reverseListIterator[T]); ok {
		return r.original
	}
	return &reverseListIterator[T]{original: original}
}

// ReverseList returns an iterable reversed view of list. The view is
// restartable: each Iterator call builds a fresh cursor starting at the
// list's end. Panics if list is nil.
func ReverseList[T any](list List[T]) Iterable[T] {
	if list == nil {
		panic("gocollect: ReverseList: list is nil")
	}
	return &reverseListIterable[T]{list: list}
}

type reverseListIterable[T any] struct {
	list List[T]
}

func (r *reverseListIterable[T]) Iterator() Iterator[T] {
	return Reverse(r.list.ListIterator(r.list.Len()))
}

func (r *reverseListIterator[T]) HasNext() bool {
	return r.original.HasPrevious()
}

func (r *reverseListIterator[T]) Next() (T, error) {
	return r.original.Previous()
}

func (r *reverseListIterator[T]) HasPrevious() bool {
	return r.original.HasNext()
}

func (r *reverseListIterator[T]) Previous() (T, error) {
	return r.original.Next()
}

func (r *reverseListIterator[T]) NextIndex() int {
	return r.original.PreviousIndex()
}

func (r *reverseListIterator[T]) PreviousIndex() int {
	return r.original.NextIndex()
}

func (r *reverseListIterator[T]) Remove() error {
	return r.original.Remove()
}

func (r *reverseListIterator[T]) Set(value T) error {
	return r.original.Set(value)
}

// Add inserts into the underlying cursor and steps it back once, so the
// new element lands in the correct relative position from the reversed
// perspective.
func (r *reverseListIterator[T]) Add(value T) error {
	if err := r.original.Add(value); err != nil {
		return err
	}
	_, err := r.original.Previous()
	return err
}
