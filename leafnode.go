// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

import "github.com/gaissmai/glass/internal/bitset"

// leafNode is a 64-slot terminal node (spec §3, §4.4): it stores the
// aggregated quantities for every price sharing leafPrefix, is linked
// into the global ascending leaf list via prev/next, and is chained
// into the pre-leaf hash cache via hashNext.
type leafNode struct {
	mask   bitset.Set64
	values [fanout]uint64

	prev, next int32 // leaf-arena indices, noIndex at the list ends

	parent     int32 // internal-arena index of the owning pre-leaf node
	parentSlot uint8

	prefix uint32 // keyBits-bitsPerLevel high bits common to every slot

	hashNext int32 // leaf-arena index, intrusive hash-chain link
}

// count returns popcount(mask), this leaf's contribution to its
// parent's childCounts (invariant I2).
func (l *leafNode) count() uint32 {
	return uint32(l.mask.Count())
}

// isEmpty reports whether no slot is occupied; such a leaf is
// destroyed immediately (invariant I8), it never persists with a
// zero mask.
func (l *leafNode) isEmpty() bool {
	return l.mask.IsEmpty()
}

// get returns the value at slot, if occupied.
func (l *leafNode) get(slot uint8) (value uint64, ok bool) {
	if !l.mask.Test(uint(slot)) {
		return 0, false
	}
	return l.values[slot], true
}

// leafInsertResult distinguishes a fresh slot from an overwrite,
// spec §4.4's Inserted/Updated(old_value).
type leafInsertResult struct {
	updated  bool
	oldValue uint64
}

// insert writes value at slot, reporting whether a live value was
// overwritten (and its prior contents). It does not touch any
// ancestor bookkeeping; callers update counts themselves.
func (l *leafNode) insert(slot uint8, value uint64) leafInsertResult {
	if l.mask.Test(uint(slot)) {
		old := l.values[slot]
		l.values[slot] = value
		return leafInsertResult{updated: true, oldValue: old}
	}
	l.mask = l.mask.With(uint(slot))
	l.values[slot] = value
	return leafInsertResult{}
}

// remove clears slot, which must currently be occupied, and returns
// its value.
func (l *leafNode) remove(slot uint8) uint64 {
	value := l.values[slot]
	l.mask = l.mask.Without(uint(slot))
	l.values[slot] = 0
	return value
}

// firstSlot / lastSlot / nextSlotAfter / prevSlotBefore expose the
// bit-set primitives of spec §4.2 at leaf granularity.
func (l *leafNode) firstSlot() (slot uint8, ok bool) {
	idx, ok := l.mask.FirstSet()
	return uint8(idx), ok
}

func (l *leafNode) lastSlot() (slot uint8, ok bool) {
	idx, ok := l.mask.LastSet()
	return uint8(idx), ok
}

func (l *leafNode) nextSlotAfter(slot uint8) (next uint8, ok bool) {
	idx, ok := l.mask.NextSetAfter(uint(slot))
	return uint8(idx), ok
}

func (l *leafNode) prevSlotBefore(slot uint8) (prev uint8, ok bool) {
	idx, ok := l.mask.PrevSetBefore(uint(slot))
	return uint8(idx), ok
}

// rankBelow returns the number of occupied slots strictly below slot,
// the leaf-local contribution to Glass.Rank.
func (l *leafNode) rankBelow(slot uint) int {
	return l.mask.RankBelow(slot)
}

// nthSlot returns the slot holding the n-th (0-indexed) occupied value.
func (l *leafNode) nthSlot(n int) (slot uint8, ok bool) {
	idx, ok := l.mask.NthSet(n)
	return uint8(idx), ok
}
