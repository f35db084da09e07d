// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements the fixed 64-slot occupancy masks used by
// Glass internal and leaf nodes.
//
// Studied [github.com/gaissmai/bart]'s internal/bitset.BitSet256 inside
// out and cut it down to a single uint64 word: Glass nodes branch on a
// 6-bit digit, so one word is the whole mask, not four.
package bitset

import "math/bits"

// Set64 is a fixed occupancy mask over [0..63], one bit per slot.
type Set64 uint64

// Test reports whether bit i is set. i must be < 64.
func (s Set64) Test(i uint) bool {
	return s&(1<<i) != 0
}

// With returns s with bit i set.
func (s Set64) With(i uint) Set64 {
	return s | 1<<i
}

// Without returns s with bit i cleared.
func (s Set64) Without(i uint) Set64 {
	return s &^ (1 << i)
}

// IsEmpty reports whether no bit is set.
func (s Set64) IsEmpty() bool {
	return s == 0
}

// Count returns the popcount of s.
func (s Set64) Count() int {
	return bits.OnesCount64(uint64(s))
}

// FirstSet returns the least-significant set bit, or ok=false if s is empty.
func (s Set64) FirstSet() (idx uint, ok bool) {
	if s == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros64(uint64(s))), true
}

// LastSet returns the most-significant set bit, or ok=false if s is empty.
func (s Set64) LastSet() (idx uint, ok bool) {
	if s == 0 {
		return 0, false
	}
	return uint(bits.Len64(uint64(s))) - 1, true
}

// NextSetAfter returns the least index strictly greater than i with its
// bit set, or ok=false if none exists.
func (s Set64) NextSetAfter(i uint) (idx uint, ok bool) {
	if i >= 63 {
		return 0, false
	}
	masked := uint64(s) &^ (1<<(i+1) - 1)
	if masked == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros64(masked)), true
}

// PrevSetBefore returns the greatest index strictly less than i with its
// bit set, or ok=false if none exists.
func (s Set64) PrevSetBefore(i uint) (idx uint, ok bool) {
	if i == 0 {
		return 0, false
	}
	masked := uint64(s) & (1<<i - 1)
	if masked == 0 {
		return 0, false
	}
	return uint(bits.Len64(masked)) - 1, true
}

// RankBelow returns popcount(s & ((1<<i)-1)), the number of set bits
// strictly below index i.
func (s Set64) RankBelow(i uint) int {
	if i >= 64 {
		return s.Count()
	}
	return bits.OnesCount64(uint64(s) & (1<<i - 1))
}

// NthSet returns the index of the n-th set bit (0-indexed), or
// ok=false if fewer than n+1 bits are set.
func (s Set64) NthSet(n int) (idx uint, ok bool) {
	word := uint64(s)
	for word != 0 {
		lsb := word & (-word)
		if n == 0 {
			return uint(bits.TrailingZeros64(word)), true
		}
		n--
		word ^= lsb
	}
	return 0, false
}
