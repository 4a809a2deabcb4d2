// Package store is the shared algorithm layer for the mu-store container
// family: the error taxonomy, comparator and predicate signatures, swap
// primitives, lower-bound binary search, in-place heapsort, and the
// sorted-insert policy engine.
//
// Two storage flavors run through every API in this module:
//
//   - byte records: a container's backing store is a caller-owned []byte
//     sliced into fixed-size records of itemSize bytes; operations copy
//     whole records.
//   - pointer slots: the backing store is a caller-owned []unsafe.Pointer;
//     operations copy only the reference, never the pointee.
//
// Nothing here allocates after initialization and nothing blocks. All
// functions are single-threaded; callers needing cross-thread hand-off use
// the independent spsc package instead.
package store
