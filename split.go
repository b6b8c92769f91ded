package gocollect

import (
	"strings"

	"github.com/pkg/errors"
)

// splitIterable is a lazy split view of subject by delimiter. The view
// itself is restartable; each cursor is one-shot and forward-only.
type splitIterable struct {
	delimiter string
	subject   string
}

// Split returns a lazy iterable view of subject split by delimiter.
// Joining the yielded pieces with the delimiter reproduces subject
// exactly: an empty subject yields one empty piece, and a subject
// without any delimiter occurrence yields one piece equal to the whole
// subject.
func Split(delimiter, subject string) Iterable[string] {
	return &splitIterable{delimiter: delimiter, subject: subject}
}

func (s *splitIterable) Iterator() Iterator[string] {
	return &splitIterator{delimiter: s.delimiter, subject: s.subject}
}

// splitIterator scans subject left to right. position is the start of
// the next piece, or -1 once the final piece has been produced.
type splitIterator struct {
	delimiter string
	subject   string
	position  int
}

func (s *splitIterator) HasNext() bool {
	return s.position != -1
}

func (s *splitIterator) Next() (string, error) {
	if s.position == -1 {
		return "", errors.Wrap(ErrNoSuchElement, "Next past end of iterator")
	}
	rest := s.subject[s.position:]
	i := strings.Index(rest, s.delimiter)
	if i < 0 {
		s.position = -1
		return rest, nil
	}
	piece := rest[:i]
	s.position += i + len(s.delimiter)
	return piece, nil
}

func (s *splitIterator) Remove() error {
	return errors.Wrap(ErrUnsupported, "Remove through a split view")
}

// Join concatenates the strings yielded by strs, inserting delimiter
// between consecutive elements.
func Join(delimiter string, strs Iterable[string]) string {
	var builder strings.Builder
	it := strs.Iterator()
	for it.HasNext() {
		s, err := it.Next()
		if err != nil {
			break
		}
		builder.WriteString(s)
		if it.HasNext() {
			builder.WriteString(delimiter)
		}
	}
	return builder.String()
}
