package store

import "unsafe"

// Swap exchanges two equal-length byte regions in place. Safe no-op when
// either region is nil or empty; if lengths differ only the common prefix is
// exchanged (callers always pass full record slices of one stride, so the
// lengths match by construction).
func Swap(a, b []byte) {
	if len(a) == 0 || len(b) == 0 {
		return
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		a[i], b[i] = b[i], a[i]
	}
}

// SwapPointers exchanges two pointer values through their handles. Safe
// no-op when either handle is nil.
func SwapPointers(a, b *unsafe.Pointer) {
	if a == nil || b == nil {
		return
	}
	*a, *b = *b, *a
}
