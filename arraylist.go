package gocollect

import "fmt"

// arrayList is the slice-backed List shape.
type arrayList[T any] struct {
	items []T
}

// NewArrayList creates an empty array-backed list.
func NewArrayList[T any]() List[T] {
	return &arrayList[T]{}
}

// NewArrayListOf creates an array-backed list whose contents are a copy of
// the given values.
func NewArrayListOf[T any](values ...T) List[T] {
	items := make([]T, len(values))
	copy(items, values)
	return &arrayList[T]{items: items}
}

func (l *arrayList[T]) Add(value T) {
	l.items = append(l.items, value)
}

func (l *arrayList[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[index], true
}

func (l *arrayList[T]) Set(index int, value T) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items[index] = value
	return true
}

func (l *arrayList[T]) Insert(index int, value T) bool {
	if index < 0 || index > len(l.items) {
		return false
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = value
	return true
}

func (l *arrayList[T]) RemoveAt(index int) (T, bool) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, false
	}
	removed := l.items[index]
	copy(l.items[index:], l.items[index+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return removed, true
}

func (l *arrayList[T]) Len() int {
	return len(l.items)
}

func (l *arrayList[T]) IsEmpty() bool {
	return len(l.items) == 0
}

func (l *arrayList[T]) Clear() {
	l.items = nil
}

func (l *arrayList[T]) Values() []T {
	values := make([]T, len(l.items))
	copy(values, l.items)
	return values
}

func (l *arrayList[T]) Iterator() Iterator[T] {
	return l.ListIterator(0)
}

func (l *arrayList[T]) ListIterator(index int) ListIterator[T] {
	return newListIterator[T](l, index)
}

func checkCursorIndex[T any](list List[T], index int) {
	if index < 0 || index > list.Len() {
		panic(fmt.Sprintf("gocollect: cursor index %d out of range [0, %d]", index, list.Len()))
	}
}
