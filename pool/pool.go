// Package pool is a fixed-size block allocator over a caller-owned byte
// arena. Free blocks form an intrusive singly-linked list threaded through
// the blocks themselves: the first 8 bytes of each free block hold the
// little-endian index of the next free block. A block's bytes belong to the
// caller between Alloc and Free, so the link costs no side storage.
//
// The arena is never grown and nothing is allocated after New; Alloc and
// Free are O(1) index pushes and pops on the free list.
package pool

import (
	"encoding/binary"
	"unsafe"

	"github.com/mu-tools/mu-store/store"
)

// linkSize is the room each block must reserve for the free-list link while
// the block is unused.
const linkSize = 8

// nilSlot terminates the free list.
const nilSlot = ^uint64(0)

// Pool is the control block for one block pool. Obtain one from New;
// accessors tolerate a nil receiver.
type Pool struct {
	arena    []byte
	nItems   int
	itemSize int
	freeHead uint64
}

// New binds a pool to an arena with room for nItems blocks of itemSize
// bytes and threads the free list through every block. Returns nil when the
// arena is absent or too small, nItems is zero, or itemSize is smaller than
// the 8-byte free-list link.
func New(arena []byte, nItems, itemSize int) *Pool {
	if arena == nil || nItems <= 0 || itemSize < linkSize || len(arena) < nItems*itemSize {
		return nil
	}
	p := &Pool{
		arena:    arena[:nItems*itemSize],
		nItems:   nItems,
		itemSize: itemSize,
	}
	p.Reset()
	return p
}

// Capacity returns the number of blocks the pool manages, 0 for a nil pool.
func (p *Pool) Capacity() int {
	if p == nil {
		return 0
	}
	return p.nItems
}

// ItemSize returns the block stride in bytes, 0 for a nil pool.
func (p *Pool) ItemSize() int {
	if p == nil {
		return 0
	}
	return p.itemSize
}

// Alloc pops one block off the free list and returns its full slice, or nil
// when the pool is exhausted. The returned bytes are whatever the block
// last held; callers initialize them.
func (p *Pool) Alloc() []byte {
	if p == nil || p.freeHead == nilSlot {
		return nil
	}
	i := int(p.freeHead)
	block := p.block(i)
	p.freeHead = binary.LittleEndian.Uint64(block)
	return block
}

// Free pushes a previously allocated block back onto the free list. The
// block must be a slice returned by Alloc from this pool; anything else —
// nil, a foreign slice, or a misaligned sub-slice of the arena — returns
// ErrParam and changes nothing. Double-free is not detected.
func (p *Pool) Free(block []byte) error {
	if p == nil || len(block) != p.itemSize {
		return store.ErrParam
	}
	off := uintptr(unsafe.Pointer(&block[0])) - uintptr(unsafe.Pointer(&p.arena[0]))
	if off >= uintptr(len(p.arena)) || off%uintptr(p.itemSize) != 0 {
		return store.ErrParam
	}
	i := uint64(off) / uint64(p.itemSize)
	binary.LittleEndian.PutUint64(block, p.freeHead)
	p.freeHead = i
	return nil
}

// Reset abandons every outstanding allocation and rebuilds the free list
// over the whole arena. Blocks come back off the list in reverse arena
// order, matching a push of each block in turn.
func (p *Pool) Reset() {
	if p == nil {
		return
	}
	p.freeHead = nilSlot
	for i := 0; i < p.nItems; i++ {
		binary.LittleEndian.PutUint64(p.block(i), p.freeHead)
		p.freeHead = uint64(i)
	}
}

// block slices block i out of the arena.
func (p *Pool) block(i int) []byte {
	return p.arena[i*p.itemSize : (i+1)*p.itemSize]
}
