package gocollect

import (
	"iter"

	"github.com/pkg/errors"
)

// Bridges between this package's cursors and other sequence shapes:
// the language-level iter.Seq protocol, one-shot iterator views, and
// type-hiding iterable wrappers.

// All adapts an Iterable to iter.Seq, usable directly in a range-over-func
// loop. Panics if c is nil.
func All[T any](c Iterable[T]) iter.Seq[T] {
	if c == nil {
		panic("gocollect: All: iterable is nil")
	}
	return func(yield func(T) bool) {
		it := c.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromSeq adapts an iter.Seq to an Iterable. The result restarts on each
// Iterator call iff the seq itself replays. Panics if seq is nil.
func FromSeq[T any](seq iter.Seq[T]) Iterable[T] {
	if seq == nil {
		panic("gocollect: FromSeq: seq is nil")
	}
	return seqIterable[T]{seq: seq}
}

type seqIterable[T any] struct {
	seq iter.Seq[T]
}

func (s seqIterable[T]) Iterator() Iterator[T] {
	next, stop := iter.Pull(s.seq)
	return &seqIterator[T]{next: next, stop: stop}
}

// seqIterator pulls from an iter.Seq, buffering one element so HasNext
// can look ahead without losing it.
type seqIterator[T any] struct {
	next     func() (T, bool)
	stop     func()
	buffered bool
	buf      T
	done     bool
}

func (s *seqIterator[T]) HasNext() bool {
	if s.done {
		return false
	}
	if s.buffered {
		return true
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return false
	}
	s.buf = v
	s.buffered = true
	return true
}

func (s *seqIterator[T]) Next() (T, error) {
	if !s.HasNext() {
		var zero T
		return zero, errors.Wrap(ErrNoSuchElement, "Next past end of iterator")
	}
	s.buffered = false
	return s.buf, nil
}

func (s *seqIterator[T]) Remove() error {
	return errors.Wrap(ErrUnsupported, "Remove through a sequence view")
}

// Once wraps an iterator in a single-use Iterable: every Iterator call
// returns the same underlying cursor, so the view is exhausted after one
// pass. Panics if it is nil.
func Once[T any](it Iterator[T]) Iterable[T] {
	if it == nil {
		panic("gocollect: Once: iterator is nil")
	}
	return &onceIterable[T]{it: it}
}

type onceIterable[T any] struct {
	it Iterator[T]
}

func (o *onceIterable[T]) Iterator() Iterator[T] {
	return o.it
}

// ProtectIterable wraps original in a view exposing nothing beyond
// Iterator, hiding the concrete type from down-casting callers.
// Panics if original is nil.
func ProtectIterable[T any](original Iterable[T]) Iterable[T] {
	if original == nil {
		panic("gocollect: ProtectIterable: iterable is nil")
	}
	return &delegateIterable[T]{delegate: original}
}

type delegateIterable[T any] struct {
	delegate Iterable[T]
}

func (d *delegateIterable[T]) Iterator() Iterator[T] {
	return d.delegate.Iterator()
}
