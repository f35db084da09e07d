// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

// Glass is an ordered map from 32-bit price keys to 64-bit aggregated
// quantities, specialised for client-side limit-order books (spec §1).
// It is a hybrid radix-trie / doubly-linked leaf-list / intrusive
// hash-table: a bounded "hot" set of up to maxSize entries lives in
// the trie, with any overflow preempted into the cold map (§4.8).
//
// Glass is not safe for concurrent use, and no method may be invoked
// re-entrantly from within another (spec §5). The zero value is not
// ready to use; construct with New.
type Glass struct {
	internal arena[internalNode]
	leaf     arena[leafNode]

	root int32 // internal-arena index, noIndex if the trie is empty
	size uint32

	head, tail int32 // leaf-arena indices of the list ends, noIndex if empty

	hash   hashCache
	cached cachedPath

	cold map[uint32]uint64

	// thres biases preemption's victim choice toward whichever end of
	// the leaf list has been least recently touched (spec §4.8); see
	// preempt.go.
	thres int64

	// descentSteps counts internal-node traversals performed by
	// insertDescend, the debug counter spec §8 S6 asks for to observe
	// that the cached path keeps traversals bounded.
	descentSteps uint64
}

// Option configures a Glass at construction time, in the style the
// arena-cache example in the pack uses for its own functional-options
// constructor.
type Option func(*Glass)

// WithPreemptionBias seeds the adaptive hot/cold threshold counter
// (spec §4.8's thres). Most callers don't need this; it exists mainly
// for deterministic tests of the preemption policy.
func WithPreemptionBias(bias int64) Option {
	return func(g *Glass) { g.thres = bias }
}

// New returns an empty Glass.
func New(opts ...Option) *Glass {
	g := &Glass{
		internal: newArena[internalNode](arenaCapacity / fanout),
		leaf:     newArena[leafNode](arenaCapacity / fanout),
		root:     noIndex,
		head:     noIndex,
		tail:     noIndex,
		hash:     newHashCache(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Len returns the logical size of the map: entries materialised in the
// trie plus entries preempted into the cold map.
func (g *Glass) Len() uint32 {
	return g.size
}

// Clear empties the map, truncating both arenas without shrinking
// their backing storage (spec §5).
func (g *Glass) Clear() {
	g.internal.reset()
	g.leaf.reset()
	g.root = noIndex
	g.size = 0
	g.head, g.tail = noIndex, noIndex
	g.hash = newHashCache()
	g.cached = cachedPath{}
	g.cold = nil
	g.thres = 0
	g.descentSteps = 0
}

// Stats is a diagnostic snapshot, echoing the teacher's pool.Stats()
// idiom; none of its fields are load-bearing for any invariant.
type Stats struct {
	Len          uint32
	ColdLen      int
	InternalLive int
	LeafLive     int
	DescentSteps uint64
}

// Stats returns a diagnostic snapshot of Glass's internal state.
func (g *Glass) Stats() Stats {
	return Stats{
		Len:          g.size,
		ColdLen:      len(g.cold),
		InternalLive: g.internal.liveCount(),
		LeafLive:     g.leaf.liveCount(),
		DescentSteps: g.descentSteps,
	}
}

// ResetDescentSteps zeroes the debug descent-step counter so a caller
// can measure the traversal cost of a subsequent batch of operations
// in isolation (spec §8 S6).
func (g *Glass) ResetDescentSteps() {
	g.descentSteps = 0
}
