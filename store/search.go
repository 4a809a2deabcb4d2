package store

import "unsafe"

// Search locates the lower bound of item in a sorted, stride-packed record
// array: the smallest index i in [0, count] with cmp(item, record[i]) <= 0,
// where count = len(base)/itemSize. A target equal to an existing run lands
// on the run's first record, which is the insertion point that keeps new
// duplicates ahead of old ones.
//
// Pure and O(log count). base must already be sorted ascending under cmp;
// the result is unspecified otherwise.
func Search(base []byte, itemSize int, cmp CompareFn, item []byte) int {
	if itemSize <= 0 || cmp == nil {
		return 0
	}
	lo, hi := 0, len(base)/itemSize
	for lo < hi {
		mid := (lo + hi) >> 1
		if cmp(item, base[mid*itemSize:(mid+1)*itemSize]) <= 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// PSearch is Search over an array of element pointers: cmp receives item and
// the stored pointer ptrs[i].
func PSearch(ptrs []unsafe.Pointer, cmp PCompareFn, item unsafe.Pointer) int {
	if cmp == nil {
		return 0
	}
	lo, hi := 0, len(ptrs)
	for lo < hi {
		mid := (lo + hi) >> 1
		if cmp(item, ptrs[mid]) <= 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
