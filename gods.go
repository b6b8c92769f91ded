package gocollect

import (
	"cmp"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Shapes in this file wrap container implementations from
// github.com/emirpasic/gods behind the package's generic interfaces.
// Elements are boxed through the gods any-typed API and recovered at the
// boundary.

// linkedList adapts a gods doubly linked list to List.
type linkedList[T any] struct {
	list *doublylinkedlist.List
}

// NewLinkedList creates an empty doubly linked list.
func NewLinkedList[T any]() List[T] {
	return &linkedList[T]{list: doublylinkedlist.New()}
}

// NewLinkedListOf creates a linked list prepopulated with the given values.
func NewLinkedListOf[T any](values ...T) List[T] {
	l := doublylinkedlist.New()
	for _, v := range values {
		l.Append(v)
	}
	return &linkedList[T]{list: l}
}

func (l *linkedList[T]) Add(value T) {
	l.list.Append(value)
}

func (l *linkedList[T]) Get(index int) (T, bool) {
	boxed, found := l.list.Get(index)
	if !found {
		var zero T
		return zero, false
	}
	return boxed.(T), true
}

func (l *linkedList[T]) Set(index int, value T) bool {
	if index < 0 || index >= l.list.Size() {
		return false
	}
	l.list.Set(index, value)
	return true
}

func (l *linkedList[T]) Insert(index int, value T) bool {
	if index < 0 || index > l.list.Size() {
		return false
	}
	l.list.Insert(index, value)
	return true
}

func (l *linkedList[T]) RemoveAt(index int) (T, bool) {
	boxed, found := l.list.Get(index)
	if !found {
		var zero T
		return zero, false
	}
	l.list.Remove(index)
	return boxed.(T), true
}

func (l *linkedList[T]) Len() int {
	return l.list.Size()
}

func (l *linkedList[T]) IsEmpty() bool {
	return l.list.Empty()
}

func (l *linkedList[T]) Clear() {
	l.list.Clear()
}

func (l *linkedList[T]) Values() []T {
	boxed := l.list.Values()
	values := make([]T, len(boxed))
	for i, v := range boxed {
		values[i] = v.(T)
	}
	return values
}

func (l *linkedList[T]) Iterator() Iterator[T] {
	return l.ListIterator(0)
}

func (l *linkedList[T]) ListIterator(index int) ListIterator[T] {
	return newListIterator[T](l, index)
}

// treeMap adapts a gods tree map to Map, keeping keys in ascending order.
type treeMap[K cmp.Ordered, V any] struct {
	m *treemap.Map
}

// NewTreeMap creates an empty map ordered by its keys' natural order.
// Keys, Values and Entries are returned in ascending key order.
func NewTreeMap[K cmp.Ordered, V any]() Map[K, V] {
	return &treeMap[K, V]{
		m: treemap.NewWith(func(a, b interface{}) int {
			return cmp.Compare(a.(K), b.(K))
		}),
	}
}

func (t *treeMap[K, V]) Put(key K, value V) (previous V, replaced bool) {
	if boxed, found := t.m.Get(key); found {
		previous, replaced = boxed.(V), true
	}
	t.m.Put(key, value)
	return previous, replaced
}

func (t *treeMap[K, V]) Get(key K) (value V, found bool) {
	boxed, found := t.m.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	return boxed.(V), true
}

func (t *treeMap[K, V]) Remove(key K) (removed V, found bool) {
	boxed, found := t.m.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	t.m.Remove(key)
	return boxed.(V), true
}

func (t *treeMap[K, V]) ContainsKey(key K) bool {
	_, found := t.m.Get(key)
	return found
}

func (t *treeMap[K, V]) Len() int {
	return t.m.Size()
}

func (t *treeMap[K, V]) IsEmpty() bool {
	return t.m.Empty()
}

func (t *treeMap[K, V]) Clear() {
	t.m.Clear()
}

func (t *treeMap[K, V]) Keys() []K {
	boxed := t.m.Keys()
	keys := make([]K, len(boxed))
	for i, k := range boxed {
		keys[i] = k.(K)
	}
	return keys
}

func (t *treeMap[K, V]) Values() []V {
	boxed := t.m.Values()
	values := make([]V, len(boxed))
	for i, v := range boxed {
		values[i] = v.(V)
	}
	return values
}

func (t *treeMap[K, V]) Entries() []Entry[K, V] {
	keys := t.m.Keys()
	values := t.m.Values()
	entries := make([]Entry[K, V], len(keys))
	for i := range keys {
		entries[i] = Entry[K, V]{Key: keys[i].(K), Value: values[i].(V)}
	}
	return entries
}

func (t *treeMap[K, V]) Iterator() Iterator[Entry[K, V]] {
	return newEntryIterator(t.Entries(), func(key K) {
		t.m.Remove(key)
	})
}

// godsQueue adapts a gods linked-list queue to Queue.
type godsQueue[T any] struct {
	q *linkedlistqueue.Queue
}

// NewQueue creates an empty unbounded FIFO queue.
func NewQueue[T any]() Queue[T] {
	return &godsQueue[T]{q: linkedlistqueue.New()}
}

func (q *godsQueue[T]) Offer(value T) bool {
	q.q.Enqueue(value)
	return true
}

func (q *godsQueue[T]) Poll() (T, bool) {
	boxed, ok := q.q.Dequeue()
	if !ok {
		var zero T
		return zero, false
	}
	return boxed.(T), true
}

func (q *godsQueue[T]) Peek() (T, bool) {
	boxed, ok := q.q.Peek()
	if !ok {
		var zero T
		return zero, false
	}
	return boxed.(T), true
}

func (q *godsQueue[T]) Len() int {
	return q.q.Size()
}

func (q *godsQueue[T]) IsEmpty() bool {
	return q.q.Empty()
}

func (q *godsQueue[T]) Clear() {
	q.q.Clear()
}
