// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

import "math/bits"

// cachedPath remembers the descent for the last-touched key (spec
// §4.6): the internal-node index visited at each of the
// preLeafLevel+1 internal levels, and the leaf it bottomed out at.
// It lets a subsequent key sharing a long high-order prefix with the
// last one skip re-walking the levels that provably match.
type cachedPath struct {
	valid bool
	key   uint32

	// nodes[i] is the internal-arena index examined when extracting
	// digit i, for i in [0, preLeafLevel]. nodes[0] is always the root.
	nodes [preLeafLevel + 1]int32

	leaf int32 // leaf-arena index this path bottomed out at
}

func (c *cachedPath) invalidate() {
	c.valid = false
}

// divergeLevel reports the number of top-down internal levels whose
// digit is guaranteed identical between k and the cached key: spec's
// lambda = clz(k ^ k_prev) measures the shared high-order bit run, and
// each full bitsPerLevel-bit run of agreement pins one more digit.
// We compute it directly from lambda (math/bits.LeadingZeros32, a
// hardware LZCNT on amd64/arm64) rather than re-deriving digits one by
// one, matching spec's own formulation.
func (c *cachedPath) divergeLevel(k uint32) int {
	if !c.valid {
		return 0
	}
	if k == c.key {
		return preLeafLevel + 1 // identical key: reuse the whole path, including the leaf
	}
	lambda := bits.LeadingZeros32(k ^ c.key)
	level := lambda / bitsPerLevel
	if level > preLeafLevel+1 {
		level = preLeafLevel + 1
	}
	return level
}

// nodeAt returns the cached internal-node index at level, which must
// be <= the path's divergeLevel(k) for the given k to be valid to reuse.
func (c *cachedPath) nodeAt(level int) int32 {
	return c.nodes[level]
}

// record overwrites the cached path with a freshly completed descent.
func (c *cachedPath) record(key uint32, nodes [preLeafLevel + 1]int32, leaf int32) {
	c.valid = true
	c.key = key
	c.nodes = nodes
	c.leaf = leaf
}
