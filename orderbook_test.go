// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package glass

import "testing"

func newS1Book() *Glass {
	g := New()
	g.Insert(100, 500)
	g.Insert(110, 300)
	g.Insert(90, 400)
	return g
}

func TestComputeBuyCostNonMutating(t *testing.T) {
	g := newS1Book()

	if cost := g.ComputeBuyCost(700); cost != 66000 {
		t.Fatalf("ComputeBuyCost(700) = %d; want 66000", cost)
	}
	if cost := g.ComputeBuyCost(2000); cost != 119000 {
		t.Fatalf("ComputeBuyCost(2000) = %d; want 119000", cost)
	}
	if g.Len() != 3 {
		t.Fatalf("Len() = %d after ComputeBuyCost; want 3 (non-mutating)", g.Len())
	}
}

func TestBuyShares(t *testing.T) {
	g := newS1Book()

	if cost := g.BuyShares(500); cost != 46000 {
		t.Fatalf("BuyShares(500) = %d; want 46000", cost)
	}

	if _, ok := g.Get(90); ok {
		t.Fatal("Get(90) found a value after the level was fully consumed")
	}
	if v, ok := g.Get(100); !ok || v != 400 {
		t.Fatalf("Get(100) = %d, %v; want 400, true", v, ok)
	}
	if v, ok := g.Get(110); !ok || v != 300 {
		t.Fatalf("Get(110) = %d, %v; want 300, true", v, ok)
	}
	if k, v, ok := g.Min(); !ok || k != 100 || v != 400 {
		t.Fatalf("Min() = (%d, %d), %v; want (100, 400), true", k, v, ok)
	}
}

func TestBuyCostAndBuySharesAgree(t *testing.T) {
	g := New()
	for i := uint32(0); i < 50; i++ {
		g.Insert(1000+i, uint64(10+i))
	}

	const qty = 300

	snapshot := New()
	for k, v := range g.All() {
		snapshot.Insert(k, v)
	}

	want := g.ComputeBuyCost(qty)

	// Split the same quantity across two back-to-back mutating calls
	// (property P8) and check the costs sum to the non-mutating total.
	got := snapshot.BuyShares(qty/2) + snapshot.BuyShares(qty-qty/2)
	if got != want {
		t.Fatalf("split BuyShares cost = %d; ComputeBuyCost(%d) = %d", got, qty, want)
	}
}

func TestBuySharesPartialFill(t *testing.T) {
	g := New()
	g.Insert(10, 5)

	if cost := g.BuyShares(100); cost != 50 {
		t.Fatalf("BuyShares(100) against 5 available = %d; want 50", cost)
	}
	if g.Len() != 0 {
		t.Fatalf("Len() = %d after fully draining the only level; want 0", g.Len())
	}
}
