// spsc.go
//
// Lock-free single-producer/single-consumer queue of pointer-sized items
// over a caller-owned, power-of-two backing store.  Built for interrupt-to-
// task hand-off: the producer side may run in an ISR-like context, the
// consumer in a task, and neither ever blocks or takes a lock.  Producer
// and consumer cursors live on separate cache-lines to eliminate
// false-sharing, and each side publishes its own cursor with a release
// store after touching the slot, which is the entire synchronisation story.
package spsc

import (
	"errors"
	"unsafe"
)

// Parallel to, but deliberately independent of, the shared store taxonomy:
// this package stands alone.
var (
	ErrEmpty = errors.New("spsc: queue is empty")
	ErrFull  = errors.New("spsc: queue is full")
	ErrSize  = errors.New("spsc: store length must be >= 2 and a power of two")
)

// Queue is a fixed-capacity SPSC hand-off channel.  head is written only by
// the consumer, tail only by the producer; each side reads the other's
// cursor with an acquire load.  One slot stays permanently empty so that
// head == tail means empty and never full.
type Queue struct {
	_    [64]byte // consumer cursor isolated on its own cache-line
	head uint32
	_    [60]byte // keep producer cursor off the consumer's line
	tail uint32
	_    [60]byte // keep shared metadata off the producer's line
	mask uint32
	buf  []unsafe.Pointer
}

// New binds a queue to the caller's slot store.  The store length must be
// at least 2 and a power of two so cursor arithmetic can mask instead of
// divide; anything else returns ErrSize.  Usable capacity is len(store)-1.
func New(store []unsafe.Pointer) (*Queue, error) {
	n := len(store)
	if n < 2 || n&(n-1) != 0 {
		return nil, ErrSize
	}
	return &Queue{mask: uint32(n - 1), buf: store}, nil
}

// Capacity returns the number of usable slots: one less than the store
// length.
func (q *Queue) Capacity() int { return int(q.mask) }

// Reset empties the queue by rewinding both cursors.  NOT safe for
// concurrent use: call only during initialization or when both producer
// and consumer are known to be quiescent.
func (q *Queue) Reset() {
	q.head = 0
	q.tail = 0
}

// Put enqueues item.  Producer-side call only.  Never blocks; returns
// ErrFull without touching the queue when no slot is free.
//
// The slot is written before the new tail is published with release
// ordering, so a consumer that observes the cursor also observes the item.
//
//go:nosplit
func (q *Queue) Put(item unsafe.Pointer) error {
	t := q.tail // sole writer of tail
	next := (t + 1) & q.mask
	if next == loadAcquireUint32(&q.head) {
		return ErrFull
	}
	q.buf[t] = item
	storeReleaseUint32(&q.tail, next)
	return nil
}

// Get dequeues the oldest item.  Consumer-side call only.  Never blocks;
// returns ErrEmpty without touching the queue when nothing is queued.
//
// The slot is read before the new head is published with release ordering,
// so the producer cannot overwrite it early.
//
//go:nosplit
func (q *Queue) Get() (unsafe.Pointer, error) {
	h := q.head // sole writer of head
	if h == loadAcquireUint32(&q.tail) {
		return nil, ErrEmpty
	}
	item := q.buf[h]
	q.buf[h] = nil
	storeReleaseUint32(&q.head, (h+1)&q.mask)
	return item, nil
}

// GetWait busy-spins until an item becomes available.  Consumer-side call
// only; pairs with cpuRelax so the spin backs off politely.
func (q *Queue) GetWait() unsafe.Pointer {
	for {
		if item, err := q.Get(); err == nil {
			return item
		}
		cpuRelax()
	}
}
