// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

import (
	"iter"
	"sort"
)

// All returns an iterator over every (key, value) pair in the map, hot
// or cold, in ascending key order (spec §8's P4, "the set `Glass`
// reports via in-order iteration" is a universal invariant, not scoped
// to the hot trie). The hot trie is already ordered for free by the
// leaf list; the cold map carries no order of its own, so its keys are
// sorted once per call and ascending-merged against the leaf walk.
func (g *Glass) All() iter.Seq2[uint32, uint64] {
	return func(yield func(uint32, uint64) bool) {
		coldKeys := make([]uint32, 0, len(g.cold))
		for k := range g.cold {
			coldKeys = append(coldKeys, k)
		}
		sort.Slice(coldKeys, func(i, j int) bool { return coldKeys[i] < coldKeys[j] })

		leafIdx := g.head
		var slot uint8
		var hotOK bool
		if leafIdx != noIndex {
			slot, hotOK = g.leaf.get(leafIdx).firstSlot()
		}

		advanceHot := func() {
			l := g.leaf.get(leafIdx)
			slot, hotOK = l.nextSlotAfter(slot)
			for !hotOK {
				leafIdx = l.next
				if leafIdx == noIndex {
					return
				}
				l = g.leaf.get(leafIdx)
				slot, hotOK = l.firstSlot()
			}
		}

		ci := 0
		for (leafIdx != noIndex && hotOK) || ci < len(coldKeys) {
			if leafIdx != noIndex && hotOK {
				hotKey := keyFromPrefixSlot(g.leaf.get(leafIdx).prefix, slot)
				if ci >= len(coldKeys) || hotKey < coldKeys[ci] {
					if !yield(hotKey, g.leaf.get(leafIdx).values[slot]) {
						return
					}
					advanceHot()
					continue
				}
			}

			k := coldKeys[ci]
			if !yield(k, g.cold[k]) {
				return
			}
			ci++
		}
	}
}

// Keys returns an iterator over every key in the map, hot or cold, in
// ascending order.
func (g *Glass) Keys() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for k := range g.All() {
			if !yield(k) {
				return
			}
		}
	}
}
