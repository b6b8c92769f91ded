package gocollect

// hashSet is the built-in-map backed Set shape.
type hashSet[T comparable] struct {
	m map[T]struct{}
}

// NewHashSet creates an empty hash set.
func NewHashSet[T comparable]() Set[T] {
	return &hashSet[T]{m: make(map[T]struct{})}
}

// NewHashSetOf creates a hash set prepopulated with the given values.
func NewHashSetOf[T comparable](values ...T) Set[T] {
	m := make(map[T]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return &hashSet[T]{m: m}
}

func (s *hashSet[T]) Add(value T) bool {
	if _, found := s.m[value]; found {
		return false
	}
	s.m[value] = struct{}{}
	return true
}

func (s *hashSet[T]) Remove(value T) bool {
	if _, found := s.m[value]; !found {
		return false
	}
	delete(s.m, value)
	return true
}

func (s *hashSet[T]) Contains(value T) bool {
	_, found := s.m[value]
	return found
}

func (s *hashSet[T]) Len() int {
	return len(s.m)
}

func (s *hashSet[T]) IsEmpty() bool {
	return len(s.m) == 0
}

func (s *hashSet[T]) Clear() {
	clear(s.m)
}

func (s *hashSet[T]) Values() []T {
	values := make([]T, 0, len(s.m))
	for v := range s.m {
		values = append(values, v)
	}
	return values
}

func (s *hashSet[T]) Iterator() Iterator[T] {
	return newSliceIterator(s.Values(), func(value T) {
		delete(s.m, value)
	})
}
