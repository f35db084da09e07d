// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

// This file implements the trie traversal machinery of spec §4.3-§4.4,
// §4.6: descent, insert-descent, leaf-list predecessor/successor
// search, ancestor count propagation, and pruning.

// ensureChildInternal returns the internal-arena index of the child of
// parentIdx at digit d, creating an empty one if absent. parentIdx
// must be an internal node at a level < preLeafLevel.
func (g *Glass) ensureChildInternal(parentIdx int32, d uint8) int32 {
	p := g.internal.get(parentIdx)
	if idx, ok := p.childAt(d); ok {
		return idx
	}

	parentLevel := p.level
	childIdx := g.internal.alloc() // may grow g.internal's backing slice

	// re-fetch: alloc may have invalidated p
	p = g.internal.get(parentIdx)
	child := g.internal.get(childIdx)
	child.level = parentLevel + 1
	child.parent = parentIdx
	child.parentSlot = d
	p.setChild(d, childIdx, 0)

	return childIdx
}

// ensureLeaf returns the leaf-arena index of the child of parentIdx
// (a preLeafLevel node) at digit d, creating and wiring a fresh leaf
// (into the leaf list and the hash cache) if absent. parentIdx is
// unaffected by the leaf allocation (separate arena), so no re-fetch
// is needed after leaf.alloc().
func (g *Glass) ensureLeaf(parentIdx int32, d uint8, key uint32) int32 {
	p := g.internal.get(parentIdx)
	if idx, ok := p.childAt(d); ok {
		return idx
	}

	leafIdx := g.leaf.alloc()
	l := g.leaf.get(leafIdx)
	l.parent = parentIdx
	l.parentSlot = d
	l.prefix = leafPrefix(key)
	l.prev, l.next, l.hashNext = noIndex, noIndex, noIndex

	g.insertIntoLeafList(leafIdx, parentIdx, d)
	g.hash.insert(&g.leaf, leafIdx)

	p.setChild(d, leafIdx, 0)

	return leafIdx
}

// insertIntoLeafList splices a brand-new, not-yet-wired leaf into the
// global ascending leaf list, locating its predecessor via a trie
// walk (spec §4.6's predecessor/successor primitive, used here and by
// the public Predecessor/Successor — everyday traversal just follows
// prev/next).
func (g *Glass) insertIntoLeafList(leafIdx, parentIdx int32, d uint8) {
	pred := g.predecessorLeafOf(preLeafLevel, parentIdx, d)

	var succ int32
	if pred != noIndex {
		succ = g.leaf.get(pred).next
	} else {
		succ = g.head
	}

	l := g.leaf.get(leafIdx)
	l.prev = pred
	l.next = succ

	if pred != noIndex {
		g.leaf.get(pred).next = leafIdx
	} else {
		g.head = leafIdx
	}
	if succ != noIndex {
		g.leaf.get(succ).prev = leafIdx
	} else {
		g.tail = leafIdx
	}
}

// predecessorLeafOf finds the leaf with the greatest prefix among
// those strictly below digit `slot` of the node at (level, nodeIdx),
// searching ancestors if this node has no smaller occupied sibling.
func (g *Glass) predecessorLeafOf(level int, nodeIdx int32, slot uint8) int32 {
	n := g.internal.get(nodeIdx)
	if ds, ok := n.mask.PrevSetBefore(uint(slot)); ok {
		if level == preLeafLevel {
			return n.children[ds]
		}
		return g.maxLeafInSubtree(level+1, n.children[ds])
	}
	if n.parent == noIndex {
		return noIndex
	}
	return g.predecessorLeafOf(int(n.level)-1, n.parent, n.parentSlot)
}

// successorLeafOf is predecessorLeafOf's mirror image.
func (g *Glass) successorLeafOf(level int, nodeIdx int32, slot uint8) int32 {
	n := g.internal.get(nodeIdx)
	if ds, ok := n.mask.NextSetAfter(uint(slot)); ok {
		if level == preLeafLevel {
			return n.children[ds]
		}
		return g.minLeafInSubtree(level+1, n.children[ds])
	}
	if n.parent == noIndex {
		return noIndex
	}
	return g.successorLeafOf(int(n.level)-1, n.parent, n.parentSlot)
}

// maxLeafInSubtree descends always via the highest occupied digit,
// from an internal node at level down to its rightmost leaf.
func (g *Glass) maxLeafInSubtree(level int, nodeIdx int32) int32 {
	for level < preLeafLevel {
		n := g.internal.get(nodeIdx)
		d, _ := n.mask.LastSet() // non-empty by invariant I9
		nodeIdx = n.children[d]
		level++
	}
	n := g.internal.get(nodeIdx)
	d, _ := n.mask.LastSet()
	return n.children[d]
}

// minLeafInSubtree is maxLeafInSubtree's mirror image.
func (g *Glass) minLeafInSubtree(level int, nodeIdx int32) int32 {
	for level < preLeafLevel {
		n := g.internal.get(nodeIdx)
		d, _ := n.mask.FirstSet()
		nodeIdx = n.children[d]
		level++
	}
	n := g.internal.get(nodeIdx)
	d, _ := n.mask.FirstSet()
	return n.children[d]
}

// propagateCountDelta walks from an internal node up to the root,
// adjusting the childCounts entry that names `slot` at each level by
// delta and keeping invariant I1. The starting internalIdx/slot pair
// names the occupied-slot entry that actually changed (typically a
// leaf's slot in its preLeafLevel parent).
func (g *Glass) propagateCountDelta(internalIdx int32, slot uint8, delta int64) {
	for {
		n := g.internal.get(internalIdx)
		n.adjustChildCount(slot, delta)
		if n.parent == noIndex {
			return
		}
		slot = n.parentSlot
		internalIdx = n.parent
	}
}

// insertDescend walks (or creates) the path to the leaf that must
// hold key, using the cached path to skip levels proven identical to
// the previous operation (spec §4.6), and returns that leaf's index
// plus the in-leaf slot. It never writes the value itself.
func (g *Glass) insertDescend(key uint32) (leafIdx int32, slot uint8) {
	slot = leafSlot(key)

	if g.root == noIndex {
		g.root = g.internal.alloc()
		root := g.internal.get(g.root)
		root.level = 0
		root.parent = noIndex
	}

	var path [preLeafLevel + 1]int32
	path[0] = g.root

	startLevel := 0
	if g.cached.valid {
		dl := g.cached.divergeLevel(key)
		if dl > preLeafLevel {
			// every internal digit matches: reuse the cached leaf
			// outright, only the in-leaf slot may differ.
			leafIdx = g.cached.leaf
			g.cached.record(key, g.cached.nodes, leafIdx)
			return leafIdx, slot
		}
		for i := 0; i <= dl && i <= preLeafLevel; i++ {
			path[i] = g.cached.nodeAt(i)
		}
		startLevel = dl
	}

	cur := path[startLevel]
	for level := startLevel; level <= preLeafLevel; level++ {
		g.descentSteps++
		path[level] = cur
		d := digitAt(key, level)

		if level == preLeafLevel {
			leafIdx = g.ensureLeaf(cur, d, key)
			break
		}
		cur = g.ensureChildInternal(cur, d)
	}

	g.cached.record(key, path, leafIdx)
	return leafIdx, slot
}

// descend performs a read-only trie walk to key's leaf, without
// creating anything and without consulting the hash cache (used by
// order-statistics operations that must start from the root anyway).
func (g *Glass) descend(key uint32) (leafIdx int32, slot uint8, ok bool) {
	slot = leafSlot(key)
	if g.root == noIndex {
		return noIndex, 0, false
	}

	cur := g.root
	for level := 0; level <= preLeafLevel; level++ {
		n := g.internal.get(cur)
		d := digitAt(key, level)
		idx, found := n.childAt(d)
		if !found {
			return noIndex, 0, false
		}
		if level == preLeafLevel {
			return idx, slot, true
		}
		cur = idx
	}
	return noIndex, 0, false // unreachable
}

// destroyLeaf unwires an emptied leaf from the leaf list, the hash
// cache, and its parent, then recursively prunes any ancestor left
// empty by the removal (invariants I8, I9). Counts above the leaf
// must already reflect the removal (propagateCountDelta called by the
// caller before destroyLeaf).
func (g *Glass) destroyLeaf(leafIdx int32) {
	l := g.leaf.get(leafIdx)

	if l.prev != noIndex {
		g.leaf.get(l.prev).next = l.next
	} else {
		g.head = l.next
	}
	if l.next != noIndex {
		g.leaf.get(l.next).prev = l.prev
	} else {
		g.tail = l.prev
	}

	g.hash.remove(&g.leaf, leafIdx)

	parentIdx, slot := l.parent, l.parentSlot
	g.leaf.release(leafIdx)

	g.cached.invalidate()

	g.pruneInternal(parentIdx, slot)
}

// pruneInternal clears slot in the node at internalIdx (destroying a
// leaf or an emptied internal child that already vacated it) and, if
// that leaves the node itself empty, recurses up: the root is the one
// internal node allowed to sit empty (spec I9, §3's "root: InternalIndex
// or empty").
func (g *Glass) pruneInternal(internalIdx int32, slot uint8) {
	n := g.internal.get(internalIdx)
	n.clearChild(slot)

	if !n.isEmpty() {
		return
	}

	if internalIdx == g.root {
		g.internal.release(internalIdx)
		g.root = noIndex
		g.cached.invalidate()
		return
	}

	parentIdx, parentSlot := n.parent, n.parentSlot
	g.internal.release(internalIdx)
	g.cached.invalidate()
	g.pruneInternal(parentIdx, parentSlot)
}
