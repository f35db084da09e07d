// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

import "github.com/gaissmai/glass/internal/bitset"

// internalNode is a 64-way branch node of the radix trie (spec §3,
// §4.3). Nodes at level preLeafLevel branch to leaves; all other
// levels branch to further internalNodes. The level itself tells a
// reader which arena the child indices in children name.
type internalNode struct {
	level uint8

	mask bitset.Set64

	// count is the total live entry count across the whole subtree
	// rooted at this node; invariant I1 keeps it equal to the sum of
	// childCounts over set mask bits.
	count uint32

	// children holds an index per occupied slot: into the internal
	// arena if level < preLeafLevel, into the leaf arena if
	// level == preLeafLevel. Slots with mask bit clear carry no
	// meaning (invariant I3).
	children [fanout]int32

	// childCounts mirrors children: the subtree count contributed by
	// each occupied slot, used for count-indexed descent (§4.7).
	childCounts [fanout]uint32

	// parent is the internal-arena index of the parent node, or
	// noIndex for the root.
	parent     int32
	parentSlot uint8
}

// isEmpty reports whether the node holds no children at all; such a
// node above the root is pruned immediately (invariant I9).
func (n *internalNode) isEmpty() bool {
	return n.mask.IsEmpty()
}

// childAt returns the child index stored at slot d, or (noIndex, false)
// if the slot is unoccupied.
func (n *internalNode) childAt(d uint8) (idx int32, ok bool) {
	if !n.mask.Test(uint(d)) {
		return noIndex, false
	}
	return n.children[d], true
}

// setChild occupies slot d with idx and childCount c, bumping count
// for a brand-new slot; overwriting an existing slot's index (used
// when a leaf is replaced wholesale) must go through replaceChild
// instead so counts are not double-counted.
func (n *internalNode) setChild(d uint8, idx int32, c uint32) {
	n.mask = n.mask.With(uint(d))
	n.children[d] = idx
	n.childCounts[d] = c
	n.count += c
}

// replaceChild overwrites the index at an already-occupied slot
// without touching counts.
func (n *internalNode) replaceChild(d uint8, idx int32) {
	n.children[d] = idx
}

// clearChild empties slot d, which must currently be occupied, and
// returns the count it contributed.
func (n *internalNode) clearChild(d uint8) (removedCount uint32) {
	removedCount = n.childCounts[d]
	n.mask = n.mask.Without(uint(d))
	n.children[d] = noIndex
	n.childCounts[d] = 0
	n.count -= removedCount
	return removedCount
}

// adjustChildCount changes the stored count at slot d by delta and
// propagates the same delta to n.count, keeping invariant I1.
func (n *internalNode) adjustChildCount(d uint8, delta int64) {
	n.childCounts[d] = uint32(int64(n.childCounts[d]) + delta)
	n.count = uint32(int64(n.count) + delta)
}
