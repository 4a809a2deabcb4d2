// Package vec is a fixed-capacity vector of fixed-size byte records over a
// caller-owned backing store. The vector never allocates or resizes; it
// borrows the storage handed to New and copies whole records in and out.
// Sorting and sorted insertion delegate to the shared store package.
//
// No concurrency support: calls are synchronous and single-threaded, with
// any cross-thread sharing guarded externally by the caller.
package vec

import (
	"github.com/mu-tools/mu-store/store"
)

// Vec is the control block for one vector. The zero value is unusable;
// obtain one from New. Accessors tolerate a nil receiver (count 0, empty,
// not full) so a failed New can be probed without faulting.
type Vec struct {
	items    []byte
	capacity int
	count    int
	itemSize int
}

// New binds a vector to storage with room for capacity records of itemSize
// bytes. Returns nil when storage is absent or too small, or when capacity
// or itemSize is zero.
func New(storage []byte, capacity, itemSize int) *Vec {
	if storage == nil || capacity <= 0 || itemSize <= 0 || len(storage) < capacity*itemSize {
		return nil
	}
	return &Vec{
		items:    storage[:capacity*itemSize],
		capacity: capacity,
		itemSize: itemSize,
	}
}

// Capacity returns the fixed record capacity, 0 for a nil vector.
func (v *Vec) Capacity() int {
	if v == nil {
		return 0
	}
	return v.capacity
}

// Count returns the number of live records, 0 for a nil vector.
func (v *Vec) Count() int {
	if v == nil {
		return 0
	}
	return v.count
}

// IsEmpty reports whether no records are live. A nil vector is empty.
func (v *Vec) IsEmpty() bool { return v.Count() == 0 }

// IsFull reports whether every slot is live. A nil vector is never full.
func (v *Vec) IsFull() bool {
	if v == nil {
		return false
	}
	return v.count >= v.capacity
}

// ItemSize returns the record stride in bytes, 0 for a nil vector.
func (v *Vec) ItemSize() int {
	if v == nil {
		return 0
	}
	return v.itemSize
}

// Clear drops every record. Storage contents are left as-is.
func (v *Vec) Clear() error {
	if v == nil {
		return store.ErrParam
	}
	v.count = 0
	return nil
}

// Ref copies the record at index into out.
func (v *Vec) Ref(index int, out []byte) error {
	if v == nil || out == nil {
		return store.ErrParam
	}
	if index < 0 || index >= v.count {
		return store.ErrIndex
	}
	copy(out, v.slot(index))
	return nil
}

// Replace overwrites the record at index with item.
func (v *Vec) Replace(index int, item []byte) error {
	if v == nil || item == nil {
		return store.ErrParam
	}
	if index < 0 || index >= v.count {
		return store.ErrIndex
	}
	copy(v.slot(index), item)
	return nil
}

// Swap exchanges the record at index with the contents of item, in place.
func (v *Vec) Swap(index int, item []byte) error {
	if v == nil || item == nil {
		return store.ErrParam
	}
	if index < 0 || index >= v.count {
		return store.ErrIndex
	}
	store.Swap(v.slot(index), item)
	return nil
}

// Insert writes item at index, shifting later records right. index may equal
// Count, which appends.
func (v *Vec) Insert(index int, item []byte) error {
	if v == nil || item == nil {
		return store.ErrParam
	}
	if index < 0 || index > v.count {
		return store.ErrIndex
	}
	if v.count >= v.capacity {
		return store.ErrFull
	}
	at := index * v.itemSize
	end := v.count * v.itemSize
	copy(v.items[at+v.itemSize:end+v.itemSize], v.items[at:end])
	copy(v.slot(index), item)
	v.count++
	return nil
}

// Delete removes the record at index, shifting later records left. The
// removed record is copied into out when out is non-nil.
func (v *Vec) Delete(index int, out []byte) error {
	if v == nil {
		return store.ErrParam
	}
	if index < 0 || index >= v.count {
		return store.ErrIndex
	}
	if out != nil {
		copy(out, v.slot(index))
	}
	at := index * v.itemSize
	end := v.count * v.itemSize
	copy(v.items[at:], v.items[at+v.itemSize:end])
	v.count--
	return nil
}

// Push appends item.
func (v *Vec) Push(item []byte) error {
	if v == nil || item == nil {
		return store.ErrParam
	}
	if v.count >= v.capacity {
		return store.ErrFull
	}
	copy(v.slot(v.count), item)
	v.count++
	return nil
}

// Pop removes the last record, copying it into out when out is non-nil.
func (v *Vec) Pop(out []byte) error {
	if v == nil {
		return store.ErrParam
	}
	if v.count == 0 {
		return store.ErrEmpty
	}
	if out != nil {
		copy(out, v.slot(v.count-1))
	}
	v.count--
	return nil
}

// Peek copies the last record into out without removing it.
func (v *Vec) Peek(out []byte) error {
	if v == nil || out == nil {
		return store.ErrParam
	}
	if v.count == 0 {
		return store.ErrEmpty
	}
	copy(out, v.slot(v.count-1))
	return nil
}

// Find scans forward for the first record matching fn and returns its index.
func (v *Vec) Find(fn store.FindFn) (int, error) {
	if v == nil || fn == nil {
		return 0, store.ErrParam
	}
	for i := 0; i < v.count; i++ {
		if fn(v.slot(i)) {
			return i, nil
		}
	}
	return 0, store.ErrNotFound
}

// Rfind scans backward for the last record matching fn and returns its index.
func (v *Vec) Rfind(fn store.FindFn) (int, error) {
	if v == nil || fn == nil {
		return 0, store.ErrParam
	}
	for i := v.count - 1; i >= 0; i-- {
		if fn(v.slot(i)) {
			return i, nil
		}
	}
	return 0, store.ErrNotFound
}

// Sort orders the live records ascending under cmp. Heapsort: in place, not
// stable.
func (v *Vec) Sort(cmp store.CompareFn) error {
	if v == nil || cmp == nil {
		return store.ErrParam
	}
	return store.Sort(v.items[:v.count*v.itemSize], v.itemSize, cmp)
}

// Reverse flips the order of the live records in place.
func (v *Vec) Reverse() error {
	if v == nil {
		return store.ErrParam
	}
	for l, r := 0, v.count-1; l < r; l, r = l+1, r-1 {
		store.Swap(v.slot(l), v.slot(r))
	}
	return nil
}

// SortedInsert places item into an already-sorted vector according to
// policy, keeping the vector sorted on success. The equal run is located
// with a lower-bound search plus a forward scan over the duplicates; the
// policy table itself lives in store.PlanInsert.
func (v *Vec) SortedInsert(item []byte, cmp store.CompareFn, policy store.InsertPolicy) error {
	if v == nil || item == nil || cmp == nil {
		return store.ErrParam
	}

	live := v.items[:v.count*v.itemSize]
	lower := store.Search(live, v.itemSize, cmp, item)
	first, last := store.NoMatch, store.NoMatch
	for i := lower; i < v.count && cmp(v.slot(i), item) == 0; i++ {
		if first == store.NoMatch {
			first = i
		}
		last = i
	}

	plan, err := store.PlanInsert(v.count, v.capacity, first, last, lower, policy)
	if err != nil {
		return err
	}
	switch plan.Action {
	case store.ActionInsert:
		return v.Insert(plan.Index, item)
	case store.ActionReplace:
		return v.Replace(plan.Index, item)
	case store.ActionReplaceRun:
		for i := plan.Index; i <= plan.Last; i++ {
			copy(v.slot(i), item)
		}
		return nil
	}
	return store.ErrInternal
}

// slot returns the storage backing record i.
func (v *Vec) slot(i int) []byte {
	return v.items[i*v.itemSize : (i+1)*v.itemSize]
}
