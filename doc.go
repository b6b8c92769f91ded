// Package gocollect provides general-purpose containers and iteration
// utilities for Go.
//
// The package covers four families of building blocks:
//
//   - Factory: constructors for common container shapes (hash map/set,
//     array list, linked list, tree map, queue) behind small interfaces,
//     plus immutable list/map views and map entries
//   - Sync adapters: SyncMap, SyncSet, SyncList and SyncQueue wrap a plain
//     container so that every operation, including compound ones like
//     LoadOrStore, is atomic under a single per-adapter lock; SyncQueue
//     adds blocking and bounded-wait insert/remove
//   - Weak containers: maps and sets whose keys and/or values are held
//     through weak references and disappear once the referent is collected,
//     in plain and concurrency-safe variants
//   - Sequence algebra: reverse cursors and views, N-way combined
//     iterators, lazy string splitting, iterator-to-slice reification,
//     empty singletons, and bridges to the iter.Seq protocol
//
// All cursors follow one contract: HasNext is idempotent, Next reports
// ErrNoSuchElement past the end, and Remove reports ErrInvalidState or
// ErrUnsupported where the view disallows it. The library starts no
// goroutines and performs no I/O.
package gocollect
