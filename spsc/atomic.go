// atomic.go
//
// Acquire/release helpers for the queue cursors, expressed with sync/atomic.
// Go's atomics are sequentially consistent, a conservative superset of the
// release-on-publish / acquire-on-observe ordering the queue requires.
package spsc

import "sync/atomic"

// loadAcquireUint32 is an acquire load of *p.
func loadAcquireUint32(p *uint32) uint32 {
	return atomic.LoadUint32(p)
}

// storeReleaseUint32 is a release store to *p.
func storeReleaseUint32(p *uint32, v uint32) {
	atomic.StoreUint32(p, v)
}
