// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the fixed-width limb primitives that every other
// file in the package builds on: add-with-carry, a double-word multiply
// and divide, and a leading-zero count.

package bigint

import "math/bits"

// Word is the unit of storage for both the static and dynamic
// representations: an unsigned machine word, W bits wide.
type Word = uint64

const (
	wordBits = 64
	nailBits = 0 // this build carries no nail bits; see SPEC_FULL.md.

	// wordMask selects the numeric bits of a Word. With nailBits == 0
	// every bit is numeric, and limb reads elsewhere in the package use
	// the raw Word without applying this mask.
	wordMask = ^Word(0) >> nailBits

	wordMax = wordMask
)

// maskWord returns the numeric value of a limb, discarding any nail bits.
// Nothing in the package calls it: with nailBits == 0 it is the identity.
func maskWord(w Word) Word { return w & wordMask }

// addWW returns the sum x+y+carryIn and the carry out of the top bit.
// carryIn must be 0 or 1.
func addWW(x, y, carryIn Word) (sum, carryOut Word) {
	s, c := bits.Add64(x, y, carryIn)
	return s, c
}

// subWW returns the difference x-y-borrowIn and the borrow out of the top
// bit. borrowIn must be 0 or 1.
func subWW(x, y, borrowIn Word) (diff, borrowOut Word) {
	d, b := bits.Sub64(x, y, borrowIn)
	return d, b
}

// mulWW returns the 2-word product lo+hi*2^W of x*y.
func mulWW(x, y Word) (lo, hi Word) {
	hi, lo = bits.Mul64(x, y)
	return lo, hi
}

// divWW returns the quotient and remainder of (hi*2^W + lo) / y.
// It panics if y is zero or if the quotient does not fit in a Word
// (mirrors bits.Div64, which documents the same precondition).
func divWW(hi, lo, y Word) (quo, rem Word) {
	return bits.Div64(hi, lo, y)
}

// nlz returns the number of leading zero bits in a nonzero word. The
// caller must not pass zero; every call site already knows its operand
// is the top significant limb of a nonzero value.
func nlz(x Word) int {
	return bits.LeadingZeros64(x)
}

// sizeFromLoHi deduces, without branching on both halves independently,
// how many of {lo, hi} are significant: 0 if both are zero, 1 if only lo
// is nonzero, 2 if hi is nonzero. Kept as plain comparisons rather than a
// hand-scheduled branchless idiom, since Go's compiler already turns this
// shape into conditional moves on amd64/arm64.
func sizeFromLoHi(lo, hi Word) int {
	switch {
	case hi != 0:
		return 2
	case lo != 0:
		return 1
	default:
		return 0
	}
}
