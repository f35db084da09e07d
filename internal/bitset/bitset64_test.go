// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import "testing"

func TestSet64Basics(t *testing.T) {
	var s Set64

	if !s.IsEmpty() {
		t.Fatal("zero value must be empty")
	}

	s = s.With(3).With(5).With(63)

	if s.IsEmpty() {
		t.Fatal("expected non-empty after With")
	}
	if got := s.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}
	for _, bit := range []uint{3, 5, 63} {
		if !s.Test(bit) {
			t.Fatalf("Test(%d) = false, want true", bit)
		}
	}
	if s.Test(4) {
		t.Fatal("Test(4) = true, want false")
	}

	s = s.Without(5)
	if s.Test(5) {
		t.Fatal("Without(5) did not clear bit 5")
	}
	if got := s.Count(); got != 2 {
		t.Fatalf("Count() after Without = %d, want 2", got)
	}
}

func TestSet64FirstLastSet(t *testing.T) {
	var s Set64
	if _, ok := s.FirstSet(); ok {
		t.Fatal("FirstSet on empty set returned ok=true")
	}
	if _, ok := s.LastSet(); ok {
		t.Fatal("LastSet on empty set returned ok=true")
	}

	s = s.With(2).With(40).With(63)

	if idx, ok := s.FirstSet(); !ok || idx != 2 {
		t.Fatalf("FirstSet() = (%d, %v), want (2, true)", idx, ok)
	}
	if idx, ok := s.LastSet(); !ok || idx != 63 {
		t.Fatalf("LastSet() = (%d, %v), want (63, true)", idx, ok)
	}
}

func TestSet64NextPrevSet(t *testing.T) {
	var s Set64
	s = s.With(0).With(10).With(20).With(63)

	cases := []struct {
		from uint
		want uint
		ok   bool
	}{
		{0, 10, true},
		{9, 10, true},
		{10, 20, true},
		{20, 63, true},
		{62, 63, true},
		{63, 0, false},
	}
	for _, c := range cases {
		got, ok := s.NextSetAfter(c.from)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("NextSetAfter(%d) = (%d, %v), want (%d, %v)", c.from, got, ok, c.want, c.ok)
		}
	}

	revCases := []struct {
		from uint
		want uint
		ok   bool
	}{
		{63, 20, true},
		{21, 20, true},
		{20, 10, true},
		{10, 0, true},
		{1, 0, true},
		{0, 0, false},
	}
	for _, c := range revCases {
		got, ok := s.PrevSetBefore(c.from)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("PrevSetBefore(%d) = (%d, %v), want (%d, %v)", c.from, got, ok, c.want, c.ok)
		}
	}
}

func TestSet64RankBelowAndNthSet(t *testing.T) {
	var s Set64
	s = s.With(1).With(3).With(5).With(7)

	cases := []struct {
		i    uint
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{4, 2},
		{8, 4},
		{64, 4},
	}
	for _, c := range cases {
		if got := s.RankBelow(c.i); got != c.want {
			t.Errorf("RankBelow(%d) = %d, want %d", c.i, got, c.want)
		}
	}

	wantBits := []uint{1, 3, 5, 7}
	for n, want := range wantBits {
		got, ok := s.NthSet(n)
		if !ok || got != want {
			t.Errorf("NthSet(%d) = (%d, %v), want (%d, true)", n, got, ok, want)
		}
	}
	if _, ok := s.NthSet(4); ok {
		t.Fatal("NthSet(4) should miss, only 4 bits set")
	}
}
