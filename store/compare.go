package store

import "unsafe"

// CompareFn is a total-order 3-way comparison over two byte records of equal
// stride: negative if a < b, zero if equal, positive if a > b. It must be
// antisymmetric and transitive; sort and search results are garbage otherwise
// and no guard exists against an inconsistent comparator.
type CompareFn func(a, b []byte) int

// PCompareFn is the pointer-slot flavor of CompareFn. Both arguments are the
// stored element pointers, not pointers into the slot array.
type PCompareFn func(a, b unsafe.Pointer) int

// FindFn reports whether a byte record matches the caller's criteria.
// Context travels in the closure.
type FindFn func(item []byte) bool

// PFindFn reports whether a stored element pointer matches.
type PFindFn func(item unsafe.Pointer) bool
