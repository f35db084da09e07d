// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

import "github.com/dolthub/maphash"

// hashCache is the pre-leaf hash cache of spec §4.5: an open-chained
// hash table keyed by a leaf's prefix (the high keyBits-bitsPerLevel
// bits of any key it stores), letting Get/Remove skip the trie descent
// entirely on a hit.
//
// The hash function itself is treated as an opaque collaborator per
// spec §1 ("hashing library choice... out of scope"); rather than
// hand-roll a 64-bit mixer we reach for maphash.Hasher, the same
// generic allocation-free hasher the arena-backed swiss map in the
// example pack uses for its own open-addressed table.
type hashCache struct {
	buckets [htSize]int32 // leaf-arena index of chain head, noIndex if empty
	hasher  maphash.Hasher[uint32]
}

func newHashCache() hashCache {
	hc := hashCache{
		hasher: maphash.NewHasher[uint32](),
	}
	for i := range hc.buckets {
		hc.buckets[i] = noIndex
	}
	return hc
}

func (hc *hashCache) bucketFor(prefix uint32) uint32 {
	return uint32(hc.hasher.Hash(prefix) % htSize)
}

// find walks the chain for prefix, returning the matching leaf's
// arena index.
func (hc *hashCache) find(leaves *arena[leafNode], prefix uint32) (leafIdx int32, ok bool) {
	b := hc.bucketFor(prefix)
	for idx := hc.buckets[b]; idx != noIndex; {
		l := leaves.get(idx)
		if l.prefix == prefix {
			return idx, true
		}
		idx = l.hashNext
	}
	return noIndex, false
}

// insert prepends leafIdx to its bucket's chain, per spec §4.5's
// "Chain policy: on leaf creation, prepend to the chain."
func (hc *hashCache) insert(leaves *arena[leafNode], leafIdx int32) {
	l := leaves.get(leafIdx)
	b := hc.bucketFor(l.prefix)
	l.hashNext = hc.buckets[b]
	hc.buckets[b] = leafIdx
}

// remove unlinks leafIdx from its bucket's chain.
func (hc *hashCache) remove(leaves *arena[leafNode], leafIdx int32) {
	l := leaves.get(leafIdx)
	b := hc.bucketFor(l.prefix)

	if hc.buckets[b] == leafIdx {
		hc.buckets[b] = l.hashNext
		l.hashNext = noIndex
		return
	}

	for idx := hc.buckets[b]; idx != noIndex; {
		cur := leaves.get(idx)
		if cur.hashNext == leafIdx {
			cur.hashNext = l.hashNext
			l.hashNext = noIndex
			return
		}
		idx = cur.hashNext
	}
}
