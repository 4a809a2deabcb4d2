// Package queue is a fixed-capacity circular FIFO of fixed-size byte records
// over a caller-owned backing store. Head and tail chase each other with
// plain `(i + 1) % capacity` arithmetic and an explicit live count, so the
// full store is usable. Records are copied in on Put and out on Get.
//
// Single-threaded; for a lock-free producer/consumer hand-off use the spsc
// package instead.
package queue

import (
	"github.com/mu-tools/mu-store/store"
)

// Queue is the control block for one circular FIFO. Obtain one from New;
// accessors tolerate a nil receiver.
type Queue struct {
	items    []byte
	capacity int
	itemSize int
	count    int
	head     int // next record to Get
	tail     int // next slot to Put
}

// New binds a queue to storage with room for capacity records of itemSize
// bytes. Returns nil when storage is absent or too small, or when capacity
// or itemSize is zero.
func New(storage []byte, capacity, itemSize int) *Queue {
	if storage == nil || capacity <= 0 || itemSize <= 0 || len(storage) < capacity*itemSize {
		return nil
	}
	return &Queue{
		items:    storage[:capacity*itemSize],
		capacity: capacity,
		itemSize: itemSize,
	}
}

// Capacity returns the fixed record capacity, 0 for a nil queue.
func (q *Queue) Capacity() int {
	if q == nil {
		return 0
	}
	return q.capacity
}

// Count returns the number of live records, 0 for a nil queue.
func (q *Queue) Count() int {
	if q == nil {
		return 0
	}
	return q.count
}

// IsEmpty reports whether no records are queued. A nil queue is empty.
func (q *Queue) IsEmpty() bool { return q.Count() == 0 }

// IsFull reports whether every slot is occupied. A nil queue is never full.
func (q *Queue) IsFull() bool {
	if q == nil {
		return false
	}
	return q.count >= q.capacity
}

// Clear drops every record and rewinds both indices.
func (q *Queue) Clear() error {
	if q == nil {
		return store.ErrParam
	}
	q.count, q.head, q.tail = 0, 0, 0
	return nil
}

// Put copies item into the tail slot.
func (q *Queue) Put(item []byte) error {
	if q == nil || item == nil {
		return store.ErrParam
	}
	if q.count >= q.capacity {
		return store.ErrFull
	}
	copy(q.items[q.tail*q.itemSize:(q.tail+1)*q.itemSize], item)
	q.tail = (q.tail + 1) % q.capacity
	q.count++
	return nil
}

// Get removes the head record, copying it into out when out is non-nil.
func (q *Queue) Get(out []byte) error {
	if q == nil {
		return store.ErrParam
	}
	if q.count == 0 {
		return store.ErrEmpty
	}
	if out != nil {
		copy(out, q.items[q.head*q.itemSize:(q.head+1)*q.itemSize])
	}
	q.head = (q.head + 1) % q.capacity
	q.count--
	return nil
}

// Peek copies the head record into out without removing it.
func (q *Queue) Peek(out []byte) error {
	if q == nil || out == nil {
		return store.ErrParam
	}
	if q.count == 0 {
		return store.ErrEmpty
	}
	copy(out, q.items[q.head*q.itemSize:(q.head+1)*q.itemSize])
	return nil
}
