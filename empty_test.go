package gocollect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyIterator(t *testing.T) {
	it := EmptyIterator[int]()
	assert.False(t, it.HasNext())

	_, err := it.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)

	assert.ErrorIs(t, it.Remove(), ErrInvalidState)
}

func TestEmptyIterable(t *testing.T) {
	e := EmptyIterable[string]()
	assert.Empty(t, ToSlice(e.Iterator()))
	assert.Empty(t, ToSlice(e.Iterator()))
}

func TestEmptyViewsAreShared(t *testing.T) {
	// Zero-width stateless values: every call site gets an identical
	// instance.
	assert.Equal(t, EmptyIterator[int](), EmptyIterator[int]())
	assert.Equal(t, EmptyIterable[int](), EmptyIterable[int]())
}
