// Package slotarray implements a fixed-length array of volatile slots,
// each holding an any value with acquire/release semantics.
//
// An Array never resizes itself; growing to a new length means allocating
// a new Array and copying, which is [pkg/ext]'s job. The only thing an
// Array owns is per-slot load/store/swap/cas and its own length.
package slotarray

import "sync/atomic"

// Array is a length-indexed array of slots, each independently
// loadable/storable with acquire/release semantics via [atomic.Pointer].
//
// The zero value is not useful; use [New].
type Array struct {
	slots []atomic.Pointer[any]
}

// New allocates an Array with n empty slots.
func New(n int) *Array {
	return &Array{slots: make([]atomic.Pointer[any], n)}
}

// Len returns the number of slots in this Array.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.slots)
}

// Load loads the value at slot i. ok is false if the slot has never been
// written.
func (a *Array) Load(i int) (v any, ok bool) {
	p := a.slots[i].Load()
	if p == nil {
		return nil, false
	}
	return *p, true
}

// Store unconditionally writes v to slot i.
func (a *Array) Store(i int, v any) {
	a.slots[i].Store(&v)
}

// Swap writes v to slot i and returns the value it displaced. ok is false
// if the slot was previously empty.
func (a *Array) Swap(i int, v any) (old any, ok bool) {
	p := a.slots[i].Swap(&v)
	if p == nil {
		return nil, false
	}
	return *p, true
}

// CAS writes v to slot i only if the slot is currently empty.
func (a *Array) CAS(i int, v any) (swapped bool) {
	return a.slots[i].CompareAndSwap(nil, &v)
}

// CopyFrom copies every occupied slot of src into a, starting at index 0,
// up to the shorter of the two lengths. Trimming to a smaller array drops
// the slots past the new length; growing leaves the tail slots empty.
//
// CopyFrom is not synchronized against concurrent writers of src; callers
// that need a consistent snapshot must hold whatever lock guards src.
func (a *Array) CopyFrom(src *Array) {
	if src == nil {
		return
	}
	n := min(len(a.slots), len(src.slots))
	for i := 0; i < n; i++ {
		if p := src.slots[i].Load(); p != nil {
			a.slots[i].Store(p)
		}
	}
}
