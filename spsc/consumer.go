// consumer.go
//
// Pinned drain loop for the consumer side of a Queue.
//
//   - Dedicated OS thread, optionally pinned to `core`.
//   - Busy-spins with cpuRelax between misses; no sleeping, no channels in
//     the hot path.
//   - Exits when *stop != 0 and closes `done` exactly once.
//
// The stop flag is read atomically; everything else rides on the queue's
// own acquire/release cursors.

package spsc

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// Consume drains q on a dedicated, pinned OS thread, invoking fn for every
// item until *stop is set.  Items already queued when the stop flag rises
// may or may not be delivered; producers wanting a clean drain should stop
// producing first.  Pass a negative core to skip pinning.
func Consume(core int, q *Queue, stop *uint32, fn func(unsafe.Pointer), done chan<- struct{}) {
	go func() {
		runtime.LockOSThread()
		setAffinity(core) // stub on non-Linux
		defer func() {
			runtime.UnlockOSThread()
			close(done)
		}()

		for atomic.LoadUint32(stop) == 0 {
			item, err := q.Get()
			if err != nil {
				cpuRelax()
				continue
			}
			fn(item)
		}
	}()
}
