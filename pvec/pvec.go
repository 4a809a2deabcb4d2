// Package pvec is a fixed-capacity vector of pointer slots over a
// caller-owned backing store. Unlike its sibling vec, operations copy only
// the reference: the vector never reads or writes the pointees. Sorting and
// sorted insertion delegate to the shared store package, comparing the
// elements the slots point at.
package pvec

import (
	"unsafe"

	"github.com/mu-tools/mu-store/store"
)

// PVec is the control block for one pointer vector. Obtain one from New;
// accessors tolerate a nil receiver so a failed New can be probed safely.
type PVec struct {
	items    []unsafe.Pointer
	capacity int
	count    int
}

// New binds a pointer vector to storage with room for capacity slots.
// Returns nil when storage is absent or too small, or capacity is zero.
func New(storage []unsafe.Pointer, capacity int) *PVec {
	if storage == nil || capacity <= 0 || len(storage) < capacity {
		return nil
	}
	return &PVec{items: storage[:capacity], capacity: capacity}
}

// Capacity returns the fixed slot capacity, 0 for a nil vector.
func (v *PVec) Capacity() int {
	if v == nil {
		return 0
	}
	return v.capacity
}

// Count returns the number of live slots, 0 for a nil vector.
func (v *PVec) Count() int {
	if v == nil {
		return 0
	}
	return v.count
}

// IsEmpty reports whether no slots are live. A nil vector is empty.
func (v *PVec) IsEmpty() bool { return v.Count() == 0 }

// IsFull reports whether every slot is live. A nil vector is never full.
func (v *PVec) IsFull() bool {
	if v == nil {
		return false
	}
	return v.count >= v.capacity
}

// Clear drops every slot.
func (v *PVec) Clear() error {
	if v == nil {
		return store.ErrParam
	}
	v.count = 0
	return nil
}

// Ref returns the pointer stored at index.
func (v *PVec) Ref(index int) (unsafe.Pointer, error) {
	if v == nil {
		return nil, store.ErrParam
	}
	if index < 0 || index >= v.count {
		return nil, store.ErrIndex
	}
	return v.items[index], nil
}

// Replace overwrites the slot at index with item. A nil item is a legal
// stored value.
func (v *PVec) Replace(index int, item unsafe.Pointer) error {
	if v == nil {
		return store.ErrParam
	}
	if index < 0 || index >= v.count {
		return store.ErrIndex
	}
	v.items[index] = item
	return nil
}

// Swap exchanges the slot at index with *item.
func (v *PVec) Swap(index int, item *unsafe.Pointer) error {
	if v == nil || item == nil {
		return store.ErrParam
	}
	if index < 0 || index >= v.count {
		return store.ErrIndex
	}
	store.SwapPointers(&v.items[index], item)
	return nil
}

// Insert writes item at index, shifting later slots right. index may equal
// Count, which appends.
func (v *PVec) Insert(index int, item unsafe.Pointer) error {
	if v == nil {
		return store.ErrParam
	}
	if index < 0 || index > v.count {
		return store.ErrIndex
	}
	if v.count >= v.capacity {
		return store.ErrFull
	}
	copy(v.items[index+1:v.count+1], v.items[index:v.count])
	v.items[index] = item
	v.count++
	return nil
}

// Delete removes the slot at index, shifting later slots left, and returns
// the removed pointer.
func (v *PVec) Delete(index int) (unsafe.Pointer, error) {
	if v == nil {
		return nil, store.ErrParam
	}
	if index < 0 || index >= v.count {
		return nil, store.ErrIndex
	}
	p := v.items[index]
	copy(v.items[index:], v.items[index+1:v.count])
	v.count--
	v.items[v.count] = nil // drop the stale reference
	return p, nil
}

// Push appends item.
func (v *PVec) Push(item unsafe.Pointer) error {
	if v == nil {
		return store.ErrParam
	}
	if v.count >= v.capacity {
		return store.ErrFull
	}
	v.items[v.count] = item
	v.count++
	return nil
}

// Pop removes and returns the last slot.
func (v *PVec) Pop() (unsafe.Pointer, error) {
	if v == nil {
		return nil, store.ErrParam
	}
	if v.count == 0 {
		return nil, store.ErrEmpty
	}
	v.count--
	p := v.items[v.count]
	v.items[v.count] = nil
	return p, nil
}

// Peek returns the last slot without removing it.
func (v *PVec) Peek() (unsafe.Pointer, error) {
	if v == nil {
		return nil, store.ErrParam
	}
	if v.count == 0 {
		return nil, store.ErrEmpty
	}
	return v.items[v.count-1], nil
}

// Find scans forward for the first slot matching fn and returns its index.
func (v *PVec) Find(fn store.PFindFn) (int, error) {
	if v == nil || fn == nil {
		return 0, store.ErrParam
	}
	for i := 0; i < v.count; i++ {
		if fn(v.items[i]) {
			return i, nil
		}
	}
	return 0, store.ErrNotFound
}

// Rfind scans backward for the last slot matching fn and returns its index.
func (v *PVec) Rfind(fn store.PFindFn) (int, error) {
	if v == nil || fn == nil {
		return 0, store.ErrParam
	}
	for i := v.count - 1; i >= 0; i-- {
		if fn(v.items[i]) {
			return i, nil
		}
	}
	return 0, store.ErrNotFound
}

// Sort orders the live slots ascending under cmp. Heapsort: in place, not
// stable.
func (v *PVec) Sort(cmp store.PCompareFn) error {
	if v == nil || cmp == nil {
		return store.ErrParam
	}
	return store.PSort(v.items[:v.count], cmp)
}

// Reverse flips the order of the live slots in place.
func (v *PVec) Reverse() error {
	if v == nil {
		return store.ErrParam
	}
	for l, r := 0, v.count-1; l < r; l, r = l+1, r-1 {
		v.items[l], v.items[r] = v.items[r], v.items[l]
	}
	return nil
}

// SortedInsert places item into an already-sorted vector according to
// policy, keeping the vector sorted on success. Shares the policy table
// with vec via store.PlanInsert.
func (v *PVec) SortedInsert(item unsafe.Pointer, cmp store.PCompareFn, policy store.InsertPolicy) error {
	if v == nil || cmp == nil {
		return store.ErrParam
	}

	lower := store.PSearch(v.items[:v.count], cmp, item)
	first, last := store.NoMatch, store.NoMatch
	for i := lower; i < v.count && cmp(v.items[i], item) == 0; i++ {
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
			v.items[i] = item
		}
		return nil
	}
	return store.ErrInternal
}
