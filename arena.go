// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

// arena is a growable, index-addressed pool of T, with LIFO free-list
// reuse and no compaction: released slots are recycled but never
// shrink the backing slice, and a live index is stable for the
// lifetime of the node it names (spec §4.1, §5 "Memory discipline").
type arena[T any] struct {
	items []T
	free  []int32
}

func newArena[T any](capacityHint int) arena[T] {
	return arena[T]{items: make([]T, 0, capacityHint)}
}

// alloc returns the index of a fresh or recycled T, zero-valued.
func (a *arena[T]) alloc() int32 {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		var zero T
		a.items[idx] = zero
		return idx
	}
	var zero T
	a.items = append(a.items, zero)
	return int32(len(a.items) - 1)
}

// release returns idx to the free list. The payload is left in place
// (not zeroed) until the slot is reallocated; spec §4.1 "Release marks
// the slot free without zeroing payload."
func (a *arena[T]) release(idx int32) {
	a.free = append(a.free, idx)
}

// get returns a mutable pointer to the node at idx. idx must name a
// currently-allocated slot; arena never validates this, matching
// spec §7's "use-after-clear of a stale index is undefined behaviour."
func (a *arena[T]) get(idx int32) *T {
	return &a.items[idx]
}

// len reports the number of slots ever allocated, live or freed.
func (a *arena[T]) len() int {
	return len(a.items)
}

// liveCount reports the number of currently-allocated (non-free) slots.
func (a *arena[T]) liveCount() int {
	return len(a.items) - len(a.free)
}

// reset forgets every slot, live or free, by truncating items and the
// free list to zero length; their backing arrays are kept and reused by
// later allocs. Used by Glass.Clear.
func (a *arena[T]) reset() {
	a.items = a.items[:0]
	a.free = a.free[:0]
}
