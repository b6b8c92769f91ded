package gocollect

import "github.com/pkg/errors"

// Sentinel errors reported by cursors and views. Call sites wrap these
// with context; test with errors.Is.
var (
	// ErrNoSuchElement is reported when a cursor is advanced past its end.
	ErrNoSuchElement = errors.New("no such element")

	// ErrInvalidState is reported when Remove or Set is called before the
	// cursor has produced an element, or after the element was already
	// removed.
	ErrInvalidState = errors.New("invalid iterator state")

	// ErrUnsupported is reported when a view does not allow the requested
	// mutation, such as removing through a split or sequence-backed cursor.
	ErrUnsupported = errors.New("unsupported operation")
)
