// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

import (
	"math"
	"testing"
)

func TestNthAndRemoveByIndex(t *testing.T) {
	g := New()
	g.Insert(0, 1)
	g.Insert(math.MaxUint32, 1)
	g.Insert(1<<24, 1)

	cases := []struct {
		i    uint32
		key  uint32
		want uint64
	}{
		{0, 0, 1},
		{1, 1 << 24, 1},
		{2, math.MaxUint32, 1},
	}
	for _, c := range cases {
		k, v, ok := g.Nth(c.i)
		if !ok || k != c.key || v != c.want {
			t.Fatalf("Nth(%d) = (%d, %d), %v; want (%d, %d), true", c.i, k, v, ok, c.key, c.want)
		}
	}

	k, v, ok := g.RemoveByIndex(1)
	if !ok || k != 1<<24 || v != 1 {
		t.Fatalf("RemoveByIndex(1) = (%d, %d), %v; want (%d, 1), true", k, v, ok, uint32(1<<24))
	}

	if nk, _, ok := g.Nth(1); !ok || nk != math.MaxUint32 {
		t.Fatalf("Nth(1) after removal = %d, %v; want %d, true", nk, ok, uint32(math.MaxUint32))
	}
	if g.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", g.Len())
	}
}

func TestNthOutOfRange(t *testing.T) {
	g := New()
	g.Insert(1, 1)

	if _, _, ok := g.Nth(1); ok {
		t.Fatal("Nth(1) succeeded on a single-element map")
	}
	empty := New()
	if _, _, ok := empty.Nth(0); ok {
		t.Fatal("Nth(0) succeeded on an empty map")
	}
}

func TestPreemptionBoundsHotSet(t *testing.T) {
	g := New()

	const n = 8192
	for k := uint32(0); k < n; k++ {
		g.Insert(k, 1)
		if g.trieCount() > maxSize {
			t.Fatalf("trieCount() = %d > maxSize (%d) after inserting key %d", g.trieCount(), maxSize, k)
		}
		if g.Len() != k+1 {
			t.Fatalf("Len() = %d after %d inserts; want %d", g.Len(), k+1, k+1)
		}
	}

	for k := uint32(0); k < n; k++ {
		v, ok := g.Get(k)
		if !ok || v != 1 {
			t.Fatalf("Get(%d) = %d, %v; want 1, true", k, v, ok)
		}
	}
	if _, ok := g.Get(n); ok {
		t.Fatalf("Get(%d) found a value for a never-inserted key", n)
	}
}

func TestCachedPathSkipsRepeatedKey(t *testing.T) {
	g := New()
	g.Insert(1_000_000, 1)

	g.ResetDescentSteps()
	g.Insert(1_000_000, 2)

	// Re-inserting the immediately-preceding key is the cached path's
	// best case: every internal digit is known to match, so
	// insertDescend must take zero internal-node traversal steps.
	if steps := g.Stats().DescentSteps; steps != 0 {
		t.Fatalf("DescentSteps = %d re-inserting the last-touched key; want 0", steps)
	}
	if v, ok := g.Get(1_000_000); !ok || v != 2 {
		t.Fatalf("Get(1_000_000) = %d, %v; want 2, true", v, ok)
	}
}

func TestCachedPathDivergesOnDifferentKey(t *testing.T) {
	g := New()
	g.Insert(1_000_000, 1)

	g.ResetDescentSteps()
	g.Insert(2_000_000, 1)

	// The two keys share only their top 11 bits, so the cached path is
	// reused for the top level alone and insertDescend walks every
	// remaining internal level down to the leaf again.
	if steps := g.Stats().DescentSteps; steps == 0 {
		t.Fatal("DescentSteps = 0 inserting an unrelated key; want a full descent")
	}
}

func TestColdRoundtripPreservesValue(t *testing.T) {
	g := New(WithPreemptionBias(0))

	for k := uint32(0); k < maxSize+10; k++ {
		g.Insert(k, uint64(k))
	}

	// Some low keys should have been preempted into the cold map by now.
	if len(g.cold) == 0 {
		t.Fatal("expected at least one entry to be preempted into the cold map")
	}

	for k, v := range g.cold {
		got, ok := g.Get(k)
		if !ok || got != v {
			t.Fatalf("Get(%d) = %d, %v; want %d, true (cold entry)", k, got, ok, v)
		}
	}

	// Touching a cold key promotes it back into the trie.
	var coldKey uint32
	for k := range g.cold {
		coldKey = k
		break
	}
	old, existed := g.Insert(coldKey, 999)
	if !existed {
		t.Fatalf("Insert(%d, 999) reported no existing value for a cold key", coldKey)
	}
	if v, ok := g.Get(coldKey); !ok || v != 999 {
		t.Fatalf("Get(%d) after promotion = %d, %v; want 999, true", coldKey, v, ok)
	}
	_ = old
}
