// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

import "github.com/davecgh/go-spew/spew"

// dumpConfig indents by two spaces, omits pointer addresses and
// capacities, and caps MaxDepth so that a full-depth dump of a large
// trie does not swamp a test failure message.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	MaxDepth:                4,
}

// Dump renders the internal-node and leaf arenas plus the cold map as
// a human-readable tree, for debugging and test failure output. It is
// not part of Glass's data-structure contract and its format may
// change freely.
func (g *Glass) Dump() string {
	return dumpConfig.Sdump(struct {
		Size     uint32
		Root     int32
		Head     int32
		Tail     int32
		Thres    int64
		Cold     map[uint32]uint64
		Internal []internalNode
		Leaf     []leafNode
	}{
		Size:     g.size,
		Root:     g.root,
		Head:     g.head,
		Tail:     g.tail,
		Thres:    g.thres,
		Cold:     g.cold,
		Internal: g.internal.items,
		Leaf:     g.leaf.items,
	})
}
