package gocollect

// ToSlice drains the iterator into a slice, accumulating through a
// growable buffer so unbounded inputs cost no call-stack depth.
// Panics if it is nil.
func ToSlice[T any](it Iterator[T]) []T {
	if it == nil {
		panic("gocollect: ToSlice: iterator is nil")
	}
	var out []T
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}

// ToSliceReversed drains the iterator into a slice in reverse order.
// Panics if it is nil.
func ToSliceReversed[T any](it Iterator[T]) []T {
	out := ToSlice(it)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SliceHasPrefix reports whether s begins with prefix. An empty prefix
// always matches; a prefix longer than s never matches. Elements are
// compared with ==, so nil interface or pointer elements match only nil.
func SliceHasPrefix[T comparable](s, prefix []T) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
