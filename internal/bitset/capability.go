// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import "github.com/klauspost/cpuid/v2"

// Capability records which hardware bit-manipulation extensions were
// detected on this machine at package init. Set64's methods are always
// implemented in terms of math/bits, whose compiler intrinsics already
// lower TrailingZeros64/Len64/OnesCount64 to TZCNT/LZCNT/POPCNT on amd64
// and arm64 when present; Capability exists only to make that fact
// observable (diagnostics, benchmarking) the way the teacher package's
// doc comment calls out POPCNT/LZCNT/TZCNT by name, not to gate any
// branch in the hot path.
type Capability struct {
	BMI1   bool // TZCNT / bit-test-and-extract
	BMI2   bool // PEXT / PDEP, fast variable shifts
	POPCNT bool
}

// Detected is the one-shot capability probe, computed once at package
// initialization as spec'd: "Detect once at construction; never branch
// on features inside inner loops."
var Detected = detect()

func detect() Capability {
	return Capability{
		BMI1:   cpuid.CPU.Supports(cpuid.BMI1),
		BMI2:   cpuid.CPU.Supports(cpuid.BMI2),
		POPCNT: cpuid.CPU.Supports(cpuid.POPCNT),
	}
}
