package gocollect

import "iter"

// ImmutableList is a read-only list of values. The zero value is the
// empty list.
type ImmutableList[T any] struct {
	items []T
}

// ListOf creates an immutable list holding a copy of the given values.
func ListOf[T any](values ...T) ImmutableList[T] {
	items := make([]T, len(values))
	copy(items, values)
	return ImmutableList[T]{items: items}
}

func (l ImmutableList[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[index], true
}

func (l ImmutableList[T]) Len() int {
	return len(l.items)
}

// Values returns a copy of the list contents.
func (l ImmutableList[T]) Values() []T {
	values := make([]T, len(l.items))
	copy(values, l.items)
	return values
}

// Iterator returns a cursor over the list. Remove reports ErrUnsupported.
func (l ImmutableList[T]) Iterator() Iterator[T] {
	return newSliceIterator(l.items, nil)
}

// All returns an iter.Seq over the list contents.
func (l ImmutableList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// ImmutableMap is a read-only view over key/value pairs.
type ImmutableMap[K comparable, V any] struct {
	m map[K]V
}

// MapOf wraps a copy of the given Go map in an immutable view.
func MapOf[K comparable, V any](m map[K]V) ImmutableMap[K, V] {
	copied := make(map[K]V, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return ImmutableMap[K, V]{m: copied}
}

// MapOfEntries creates an immutable map prepopulated with the given
// entries.
func MapOfEntries[K comparable, V any](entries ...Entry[K, V]) ImmutableMap[K, V] {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return ImmutableMap[K, V]{m: m}
}

func (m ImmutableMap[K, V]) Get(key K) (V, bool) {
	v, found := m.m[key]
	return v, found
}

func (m ImmutableMap[K, V]) ContainsKey(key K) bool {
	_, found := m.m[key]
	return found
}

func (m ImmutableMap[K, V]) Len() int {
	return len(m.m)
}

// Iterator returns a cursor over a snapshot of the entries. Remove
// reports ErrUnsupported.
func (m ImmutableMap[K, V]) Iterator() Iterator[Entry[K, V]] {
	entries := make([]Entry[K, V], 0, len(m.m))
	for k, v := range m.m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return newEntryIterator(entries, nil)
}

// All returns an iter.Seq2 over the map's entries.
func (m ImmutableMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.m {
			if !yield(k, v) {
				return
			}
		}
	}
}
