// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the static (inline) integer representation:
// a fixed two-limb array plus a signed length, entirely self-contained,
// with no heap allocation. See int.go for how this combines with the
// dynamic (heap) representation into the Int union, and promote.go for
// the transitions between the two.

package bigint

// inlineLimbs is the compile-time inline capacity. 2 limbs covers the
// 128-bit range without a heap allocation; see DESIGN.md for why this
// value was chosen over 1.
const inlineLimbs = 2

// staticSentinel is the distinguished value the alloc field holds while
// the static arm of Int is active. It is always negative; a Go zero
// value Int{} (alloc == 0) is also treated as static so that the zero
// value of Int is usable without calling a constructor first, which is
// why isStatic (int.go) tests alloc <= 0 rather than alloc == -1.
const staticSentinel int32 = -1

// resetStatic reinitializes z as static zero. It does not touch any
// dynamic buffer z may currently hold; callers that are demoting or
// destroying a dynamic value must release z.dyn themselves first.
func (z *Int) resetStatic() {
	z.alloc = staticSentinel
	z.size = 0
	z.stat = [inlineLimbs]Word{}
	z.dyn = nil
}

// setStaticWord sets z to the static value ±w (neg selects sign; w == 0
// forces size 0 regardless of neg, since zero has no sign).
func (z *Int) setStaticWord(neg bool, w Word) {
	z.alloc = staticSentinel
	z.dyn = nil
	z.stat = [inlineLimbs]Word{}
	if w == 0 {
		z.size = 0
		return
	}
	z.stat[0] = w
	z.size = 1
	if neg {
		z.size = -1
	}
}

// setStaticLimbs sets z to the static value described by limbs (little
// endian, least-significant first, len(limbs) <= inlineLimbs) and sign
// neg. limbs must already be normalized: the caller guarantees the top
// entry is nonzero, or limbs is empty/all-zero for a value of zero.
func (z *Int) setStaticLimbs(neg bool, limbs ...Word) {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	if n > inlineLimbs {
		panic("bigint: setStaticLimbs: value does not fit in static storage")
	}
	z.alloc = staticSentinel
	z.dyn = nil
	z.stat = [inlineLimbs]Word{}
	copy(z.stat[:n], limbs[:n])
	z.size = int32(n)
	if neg && n > 0 {
		z.size = -z.size
	}
}

// staticAsize returns the number of significant limbs in the static arm,
// regardless of sign.
func (z *Int) staticAsize() int {
	n := int(z.size)
	if n < 0 {
		n = -n
	}
	return n
}

// staticNeg reports the sign of the static arm's value (false for zero).
func (z *Int) staticNeg() bool { return z.size < 0 }

// staticWords returns a read-only view of z's significant static limbs,
// little-endian. The returned slice aliases z's storage: it must not be
// retained past the next mutation of z, and must never be written
// through.
func (z *Int) staticWords() []Word {
	checkInvariant("staticWords", "arm-access", z.isStatic(), "staticWords called while z's dynamic arm is active")
	return z.stat[:z.staticAsize()]
}

// swapStatic exchanges the static contents of z and x. Both must
// currently be static; the dynamic arms are untouched (callers that
// might be swapping a static with a dynamic Int must go through Int's
// own Swap, not this helper).
func swapStatic(z, x *Int) {
	z.size, x.size = x.size, z.size
	z.stat, x.stat = x.stat, z.stat
}
