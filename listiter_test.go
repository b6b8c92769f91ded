package gocollect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIteratorForward(t *testing.T) {
	l := NewArrayListOf(1, 2, 3)
	it := l.ListIterator(0)

	assert.Equal(t, 0, it.NextIndex())
	assert.Equal(t, -1, it.PreviousIndex())
	assert.False(t, it.HasPrevious())

	var seen []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2, 3}, seen)

	_, err := it.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)
	assert.Equal(t, 3, it.NextIndex())
	assert.Equal(t, 2, it.PreviousIndex())
}

func TestListIteratorBackward(t *testing.T) {
	l := NewArrayListOf(1, 2, 3)
	it := l.ListIterator(l.Len())

	var seen []int
	for it.HasPrevious() {
		v, err := it.Previous()
		require.NoError(t, err)
		seen = append(seen, v)
	}
	assert.Equal(t, []int{3, 2, 1}, seen)

	_, err := it.Previous()
	assert.ErrorIs(t, err, ErrNoSuchElement)
}

func TestListIteratorRemove(t *testing.T) {
	l := NewArrayListOf("a", "b", "c")
	it := l.ListIterator(0)

	assert.ErrorIs(t, it.Remove(), ErrInvalidState)

	_, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())
	assert.Equal(t, []string{"b", "c"}, l.Values())

	// A second remove without an intervening advance is invalid.
	assert.ErrorIs(t, it.Remove(), ErrInvalidState)

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestListIteratorRemoveAfterPrevious(t *testing.T) {
	l := NewArrayListOf(1, 2, 3)
	it := l.ListIterator(l.Len())

	v, err := it.Previous()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	require.NoError(t, it.Remove())
	assert.Equal(t, []int{1, 2}, l.Values())

	v, err = it.Previous()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestListIteratorSet(t *testing.T) {
	l := NewArrayListOf(1, 2, 3)
	it := l.ListIterator(0)

	assert.ErrorIs(t, it.Set(9), ErrInvalidState)

	_, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Set(9))
	assert.Equal(t, []int{9, 2, 3}, l.Values())
}

func TestListIteratorAdd(t *testing.T) {
	l := NewArrayListOf(1, 3)
	it := l.ListIterator(0)

	_, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Add(2))
	assert.Equal(t, []int{1, 2, 3}, l.Values())

	// The inserted element sits behind the cursor: Next sees 3,
	// Previous sees 2.
	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	// Add resets the current element, so Remove is invalid until the
	// next advance.
	require.NoError(t, it.Add(4))
	assert.ErrorIs(t, it.Remove(), ErrInvalidState)
}

func TestListIteratorOnLinkedList(t *testing.T) {
	l := NewLinkedListOf("a", "b", "c")
	it := l.ListIterator(1)

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	require.NoError(t, it.Remove())
	assert.Equal(t, []string{"a", "c"}, l.Values())
}

func TestListIteratorBadStartPanics(t *testing.T) {
	l := NewArrayListOf(1)
	assert.Panics(t, func() { l.ListIterator(-1) })
	assert.Panics(t, func() { l.ListIterator(2) })
}
