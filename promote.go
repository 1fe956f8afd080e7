// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the promotion/demotion controller: the
// transitions between the static and dynamic arms of Int that keep the
// numeric value unchanged across the transition.

package bigint

// promote transitions z from static to dynamic storage, preserving its
// value. nlimbsHint requests a buffer of at least that many limbs; 0
// means "exactly enough to hold z's current value". promote requires z
// to already be static — dispatch.go's setFromWords is the caller, using
// it to acquire a cache-backed buffer before overwriting z with a freshly
// computed result too wide for static storage.
func (z *Int) promote(nlimbsHint int) {
	checkInvariant("promote", "precondition", z.isStatic(), "promote called on a dynamic Int")
	need := z.staticAsize()
	if nlimbsHint > need {
		need = nlimbsHint
	}
	if need < 1 {
		need = 1
	}
	buf := globalLimbCache.take(need)
	n := copy(buf, z.staticWords())
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	size := z.size
	z.stat = [inlineLimbs]Word{}
	z.alloc = int32(len(buf))
	z.dyn = buf
	z.size = size
}

// demote transitions z from dynamic to static storage if its value fits
// in inlineLimbs limbs, preserving its value, and reports whether it
// succeeded. On failure z is left unchanged (still dynamic).
func (z *Int) demote() bool {
	checkInvariant("demote", "precondition", !z.isStatic(), "demote called on a static Int")
	if z.asize() > inlineLimbs {
		return false
	}
	var tmp [inlineLimbs]Word
	copy(tmp[:], z.dyn[:z.asize()])
	size := z.size
	globalLimbCache.give(z.dyn)
	z.alloc = staticSentinel
	z.dyn = nil
	z.stat = tmp
	z.size = size
	return true
}

// ensureStaticResult prepares z to receive a result the dispatcher is
// about to attempt via the static kernel: if z currently holds a
// dynamic buffer (left over from a previous, larger result), that
// buffer is released and z is reset to static zero first. It is a
// no-op if z is already static.
func (z *Int) ensureStaticResult() {
	if !z.isStatic() {
		z.destroyDynamic()
	}
}
