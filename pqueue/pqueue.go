// Package pqueue is a fixed-capacity circular FIFO of pointer slots over a
// caller-owned backing store. Only references move through the queue; the
// pointees are never touched. Index arithmetic matches the byte-record
// queue: `(i + 1) % capacity` with an explicit live count.
package pqueue

import (
	"unsafe"

	"github.com/mu-tools/mu-store/store"
)

// PQueue is the control block for one pointer FIFO. Obtain one from New;
// accessors tolerate a nil receiver.
type PQueue struct {
	items    []unsafe.Pointer
	capacity int
	count    int
	head     int
	tail     int
}

// New binds a pointer queue to storage with room for capacity slots.
// Returns nil when storage is absent or too small, or capacity is zero.
func New(storage []unsafe.Pointer, capacity int) *PQueue {
	if storage == nil || capacity <= 0 || len(storage) < capacity {
		return nil
	}
	return &PQueue{items: storage[:capacity], capacity: capacity}
}

// Capacity returns the fixed slot capacity, 0 for a nil queue.
func (q *PQueue) Capacity() int {
	if q == nil {
		return 0
	}
	return q.capacity
}

// Count returns the number of live slots, 0 for a nil queue.
func (q *PQueue) Count() int {
	if q == nil {
		return 0
	}
	return q.count
}

// IsEmpty reports whether no slots are queued. A nil queue is empty.
func (q *PQueue) IsEmpty() bool { return q.Count() == 0 }

// IsFull reports whether every slot is occupied. A nil queue is never full.
func (q *PQueue) IsFull() bool {
	if q == nil {
		return false
	}
	return q.count >= q.capacity
}

// Clear drops every slot and rewinds both indices.
func (q *PQueue) Clear() error {
	if q == nil {
		return store.ErrParam
	}
	q.count, q.head, q.tail = 0, 0, 0
	for i := range q.items {
		q.items[i] = nil // drop stale references
	}
	return nil
}

// Put stores the pointer value in the tail slot. A nil item is a legal
// queued value.
func (q *PQueue) Put(item unsafe.Pointer) error {
	if q == nil {
		return store.ErrParam
	}
	if q.count >= q.capacity {
		return store.ErrFull
	}
	q.items[q.tail] = item
	q.tail = (q.tail + 1) % q.capacity
	q.count++
	return nil
}

// Get removes and returns the head slot.
func (q *PQueue) Get() (unsafe.Pointer, error) {
	if q == nil {
		return nil, store.ErrParam
	}
	if q.count == 0 {
		return nil, store.ErrEmpty
	}
	p := q.items[q.head]
	q.items[q.head] = nil
	q.head = (q.head + 1) % q.capacity
	q.count--
	return p, nil
}

// Peek returns the head slot without removing it.
func (q *PQueue) Peek() (unsafe.Pointer, error) {
	if q == nil {
		return nil, store.ErrParam
	}
	if q.count == 0 {
		return nil, store.ErrEmpty
	}
	return q.items[q.head], nil
}
