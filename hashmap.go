package gocollect

// hashMap is the built-in-map backed Map shape.
type hashMap[K comparable, V any] struct {
	m map[K]V
}

// NewHashMap creates an empty hash map.
func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{m: make(map[K]V)}
}

// NewHashMapOf creates a hash map prepopulated with the given entries,
// sized for the number of entries given.
func NewHashMapOf[K comparable, V any](entries ...Entry[K, V]) Map[K, V] {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return &hashMap[K, V]{m: m}
}

func (h *hashMap[K, V]) Put(key K, value V) (previous V, replaced bool) {
	previous, replaced = h.m[key]
	h.m[key] = value
	return previous, replaced
}

func (h *hashMap[K, V]) Get(key K) (value V, found bool) {
	value, found = h.m[key]
	return value, found
}

func (h *hashMap[K, V]) Remove(key K) (removed V, found bool) {
	removed, found = h.m[key]
	if found {
		delete(h.m, key)
	}
	return removed, found
}

func (h *hashMap[K, V]) ContainsKey(key K) bool {
	_, found := h.m[key]
	return found
}

func (h *hashMap[K, V]) Len() int {
	return len(h.m)
}

func (h *hashMap[K, V]) IsEmpty() bool {
	return len(h.m) == 0
}

func (h *hashMap[K, V]) Clear() {
	clear(h.m)
}

func (h *hashMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}
	return keys
}

func (h *hashMap[K, V]) Values() []V {
	values := make([]V, 0, len(h.m))
	for _, v := range h.m {
		values = append(values, v)
	}
	return values
}

func (h *hashMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(h.m))
	for k, v := range h.m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

func (h *hashMap[K, V]) Iterator() Iterator[Entry[K, V]] {
	return newEntryIterator(h.Entries(), func(key K) {
		delete(h.m, key)
	})
}
