package gocollect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSlice(t *testing.T) {
	assert.Empty(t, ToSlice(EmptyIterator[int]()))
	assert.Equal(t, []int{1}, ToSlice(iterOf(1)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ToSlice(iterOf(1, 2, 3, 4, 5)))
}

func TestToSliceReversed(t *testing.T) {
	assert.Empty(t, ToSliceReversed(EmptyIterator[int]()))
	assert.Equal(t, []int{1}, ToSliceReversed(iterOf(1)))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, ToSliceReversed(iterOf(1, 2, 3, 4, 5)))
}

// Forward and reversed reification of the same input are exact reverses
// of one another.
func TestToSliceAndReversedMirror(t *testing.T) {
	for _, values := range [][]string{{}, {"a"}, {"a", "b", "c", "d"}} {
		forward := ToSlice(iterOf(values...))
		backward := ToSliceReversed(iterOf(values...))

		for i := range forward {
			assert.Equal(t, forward[i], backward[len(backward)-1-i])
		}
		assert.Len(t, backward, len(forward))
	}
}

func TestToSliceHandlesLongInputs(t *testing.T) {
	l := NewArrayList[int]()
	const n = 200000
	for i := range n {
		l.Add(i)
	}
	got := ToSlice(l.Iterator())
	assert.Len(t, got, n)
	assert.Equal(t, 0, got[0])
	assert.Equal(t, n-1, got[n-1])
}

func TestToSliceNilPanics(t *testing.T) {
	assert.Panics(t, func() { ToSlice[int](nil) })
}

func TestSliceHasPrefix(t *testing.T) {
	theSlice := []int{1, 2, 3}

	assert.True(t, SliceHasPrefix(theSlice, []int{}))
	assert.True(t, SliceHasPrefix(theSlice, []int{1}))
	assert.True(t, SliceHasPrefix(theSlice, []int{1, 2, 3}))
	assert.False(t, SliceHasPrefix(theSlice, []int{1, 2, 3, 4}))
	assert.False(t, SliceHasPrefix(theSlice, []int{2}))
}

func TestSliceHasPrefixNilAware(t *testing.T) {
	assert.True(t, SliceHasPrefix([]any{1, nil, 3}, []any{1, nil}))
	assert.False(t, SliceHasPrefix([]any{1, 2, 3}, []any{1, nil}))
	assert.False(t, SliceHasPrefix([]any{1, nil, 3}, []any{1, 2}))
}
