package store

import "unsafe"

// Sort orders a stride-packed record array ascending in place using binary
// max-heap heapsort: build the heap by sifting down from the last internal
// node, then repeatedly swap the root (maximum) behind the shrinking heap
// and re-sift. O(n log n), O(1) extra space, not stable — equal records may
// change relative order.
//
// Returns ErrParam when cmp is nil or itemSize is not positive. Fewer than
// two records is a no-op success.
func Sort(base []byte, itemSize int, cmp CompareFn) error {
	if cmp == nil || itemSize <= 0 {
		return ErrParam
	}
	n := len(base) / itemSize
	if n < 2 {
		return nil
	}
	for i := n/2 - 1; i >= 0; i-- {
		siftRecords(base, n, i, itemSize, cmp)
	}
	for i := n - 1; i > 0; i-- {
		Swap(base[:itemSize], base[i*itemSize:(i+1)*itemSize])
		siftRecords(base, i, 0, itemSize, cmp)
	}
	return nil
}

// PSort is Sort over an array of element pointers, ordering the slots by the
// elements they reference.
func PSort(ptrs []unsafe.Pointer, cmp PCompareFn) error {
	if cmp == nil {
		return ErrParam
	}
	n := len(ptrs)
	if n < 2 {
		return nil
	}
	for i := n/2 - 1; i >= 0; i-- {
		siftPointers(ptrs, n, i, cmp)
	}
	for i := n - 1; i > 0; i-- {
		ptrs[0], ptrs[i] = ptrs[i], ptrs[0]
		siftPointers(ptrs, i, 0, cmp)
	}
	return nil
}

// siftRecords restores the max-heap property for the subtree rooted at i,
// assuming both child subtrees are already heaps. Heap size is n records.
func siftRecords(base []byte, n, i, itemSize int, cmp CompareFn) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && cmp(rec(base, left, itemSize), rec(base, largest, itemSize)) > 0 {
			largest = left
		}
		if right < n && cmp(rec(base, right, itemSize), rec(base, largest, itemSize)) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		Swap(rec(base, i, itemSize), rec(base, largest, itemSize))
		i = largest
	}
}

func siftPointers(ptrs []unsafe.Pointer, n, i int, cmp PCompareFn) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && cmp(ptrs[left], ptrs[largest]) > 0 {
			largest = left
		}
		if right < n && cmp(ptrs[right], ptrs[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		ptrs[i], ptrs[largest] = ptrs[largest], ptrs[i]
		i = largest
	}
}

// rec slices record i out of a stride-packed array.
func rec(base []byte, i, itemSize int) []byte {
	return base[i*itemSize : (i+1)*itemSize]
}
