package gocollect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMap(t *testing.T) {
	m := NewHashMap[string, int]()
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Len())

	_, replaced := m.Put("a", 1)
	assert.False(t, replaced)
	prev, replaced := m.Put("a", 2)
	assert.True(t, replaced)
	assert.Equal(t, 1, prev)

	v, found := m.Get("a")
	assert.True(t, found)
	assert.Equal(t, 2, v)
	assert.True(t, m.ContainsKey("a"))
	assert.False(t, m.ContainsKey("b"))

	m.Put("b", 3)
	assert.Equal(t, 2, m.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, m.Keys())
	assert.ElementsMatch(t, []int{2, 3}, m.Values())

	removed, found := m.Remove("a")
	assert.True(t, found)
	assert.Equal(t, 2, removed)
	_, found = m.Remove("a")
	assert.False(t, found)

	m.Clear()
	assert.True(t, m.IsEmpty())
}

func TestHashMapIteratorRemove(t *testing.T) {
	m := NewHashMapOf(
		MapEntry("a", 1),
		MapEntry("b", 2),
		MapEntry("c", 3),
	)

	it := m.Iterator()
	err := it.Remove()
	assert.ErrorIs(t, err, ErrInvalidState)

	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		if e.Key == "b" {
			require.NoError(t, it.Remove())
		}
	}
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.ContainsKey("b"))
}

func TestHashSet(t *testing.T) {
	s := NewHashSet[int]()
	assert.True(t, s.IsEmpty())
	assert.True(t, s.Add(5))
	assert.False(t, s.Add(5))
	assert.True(t, s.Contains(5))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Remove(5))
	assert.False(t, s.Remove(5))
	assert.True(t, s.IsEmpty())

	s = NewHashSetOf(1, 2, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.ElementsMatch(t, []int{1, 2, 3}, s.Values())
}

func TestArrayList(t *testing.T) {
	l := NewArrayList[string]()
	assert.True(t, l.IsEmpty())

	l.Add("a")
	l.Add("c")
	assert.True(t, l.Insert(1, "b"))
	assert.False(t, l.Insert(5, "x"))
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())

	v, ok := l.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = l.Get(3)
	assert.False(t, ok)

	assert.True(t, l.Set(1, "B"))
	assert.False(t, l.Set(3, "x"))

	removed, ok := l.RemoveAt(1)
	assert.True(t, ok)
	assert.Equal(t, "B", removed)
	assert.Equal(t, []string{"a", "c"}, l.Values())

	l.Clear()
	assert.True(t, l.IsEmpty())
}

func TestArrayListOfCopies(t *testing.T) {
	src := []int{1, 2, 3}
	l := NewArrayListOf(src...)
	src[0] = 99
	assert.Equal(t, []int{1, 2, 3}, l.Values())
}

func TestLinkedList(t *testing.T) {
	l := NewLinkedListOf("a", "c")
	assert.True(t, l.Insert(1, "b"))
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())
	assert.Equal(t, 3, l.Len())

	v, ok := l.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	assert.True(t, l.Set(0, "A"))
	assert.False(t, l.Set(9, "x"))

	removed, ok := l.RemoveAt(0)
	assert.True(t, ok)
	assert.Equal(t, "A", removed)
	assert.Equal(t, []string{"b", "c"}, l.Values())

	got := ToSlice[string](l.Iterator())
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestTreeMapOrdersKeys(t *testing.T) {
	m := NewTreeMap[int, string]()
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	assert.Equal(t, []int{1, 2, 3}, m.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, m.Values())

	entries := m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, MapEntry(1, "a"), entries[0])

	prev, replaced := m.Put(2, "B")
	assert.True(t, replaced)
	assert.Equal(t, "b", prev)

	removed, found := m.Remove(1)
	assert.True(t, found)
	assert.Equal(t, "a", removed)
	assert.Equal(t, []int{2, 3}, m.Keys())
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int]()
	assert.True(t, q.IsEmpty())
	_, ok := q.Poll()
	assert.False(t, ok)

	assert.True(t, q.Offer(1))
	assert.True(t, q.Offer(2))
	assert.Equal(t, 2, q.Len())

	head, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, head)

	v, ok := q.Poll()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = q.Poll()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, q.IsEmpty())
}

func TestImmutableList(t *testing.T) {
	l := ListOf(1, 2, 3)
	assert.Equal(t, 3, l.Len())

	v, ok := l.Get(0)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	it := l.Iterator()
	_, err := it.Next()
	require.NoError(t, err)
	assert.ErrorIs(t, it.Remove(), ErrUnsupported)

	var seen []int
	for v := range l.All() {
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestImmutableMap(t *testing.T) {
	m := MapOfEntries(MapEntry("a", 1), MapEntry("b", 2))
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, m.ContainsKey("b"))
	assert.False(t, m.ContainsKey("c"))

	it := m.Iterator()
	_, err := it.Next()
	require.NoError(t, err)
	assert.ErrorIs(t, it.Remove(), ErrUnsupported)

	src := map[string]int{"x": 10}
	m2 := MapOf(src)
	src["x"] = 99
	v, _ = m2.Get("x")
	assert.Equal(t, 10, v)
}
