// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the Int storage union itself: the tagged
// discriminant that selects between the static (inline) and dynamic
// (heap) representations, plus the handful of lifecycle operations
// (construction, copy, value access) that stay entirely within the
// union regardless of which arm is active.
//
// Binary arithmetic and every other operation that has to reason about
// both operands' storage class lives in dispatch.go; this file only
// knows about a single Int at a time.

package bigint

// Int represents a signed arbitrary-precision integer. The zero value
// for an Int represents 0, held in static (inline) storage with no heap
// allocation.
//
// Exactly one of the static arm (alloc <= 0, values in stat/size) or the
// dynamic arm (alloc > 0, values in dyn/size) is active at any time;
// alloc's sign is the discriminant. See static.go and promote.go for the
// two arms and the transition between them.
type Int struct {
	alloc int32            // staticSentinel (<=0) if static; dynamic capacity (>0) if dynamic
	size  int32             // signed length; sign encodes the value's sign, 0 has no sign
	stat  [inlineLimbs]Word // significant only while static
	dyn   []Word            // significant only while dynamic; len(dyn) == int(alloc)
}

// isStatic reports whether z's static arm is currently active.
func (z *Int) isStatic() bool { return z.alloc <= 0 }

// asize returns the number of significant limbs in z, regardless of sign
// or storage class.
func (z *Int) asize() int {
	n := int(z.size)
	if n < 0 {
		n = -n
	}
	return n
}

// neg reports the sign of z's value (false for zero).
func (z *Int) neg() bool { return z.size < 0 }

// words returns a read-only little-endian view of z's significant
// limbs. The view aliases z's storage — static or dynamic — and is
// valid only until z is next mutated: a borrowed view, not a copy.
func (z *Int) words() []Word {
	if z.isStatic() {
		return z.staticWords()
	}
	checkInvariant("words", "arm-access", len(z.dyn) == int(z.alloc), "dynamic arm length %d does not match alloc %d", len(z.dyn), z.alloc)
	return z.dyn[:z.asize()]
}

// destroyDynamic releases z's dynamic buffer (if any) back to the limb
// cache and resets z to static zero. Safe to call on an already-static
// z (no-op beyond the reset).
func (z *Int) destroyDynamic() {
	if !z.isStatic() && z.dyn != nil {
		globalLimbCache.give(z.dyn)
	}
	z.resetStatic()
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Int) Sign() int {
	switch {
	case x.size < 0:
		return -1
	case x.size > 0:
		return 1
	default:
		return 0
	}
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = -u
	}
	return z.setUint64Signed(neg, u)
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	return z.setUint64Signed(false, x)
}

// setUint64Signed sets z to ±x (neg selects the sign; x == 0 is always
// unsigned zero) and returns z. It is the building block SetInt64 and
// SetUint64 share.
func (z *Int) setUint64Signed(neg bool, x uint64) *Int {
	z.destroyDynamic()
	z.setStaticWord(neg, x)
	return z
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int { return new(Int).SetInt64(x) }

// NewUint allocates and returns a new Int set to x.
func NewUint(x uint64) *Int { return new(Int).SetUint64(x) }

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	if x.isStatic() {
		z.destroyDynamic()
		z.stat = x.stat
		z.size = x.size
		return z
	}
	// Deep copy: duplicate x's dynamic buffer rather than aliasing it.
	buf := globalLimbCache.take(len(x.dyn))
	copy(buf, x.dyn)
	z.destroyDynamic()
	z.alloc = int32(len(buf))
	z.dyn = buf
	z.size = x.size
	return z
}

// Clone returns a deep copy of x.
func (x *Int) Clone() *Int { return new(Int).Set(x) }

// Swap exchanges the values of z and x.
func (z *Int) Swap(x *Int) {
	if z == x {
		return
	}
	*z, *x = *x, *z
}

// Move transfers x's value into z and leaves x reset to static zero:
// if x held a dynamic buffer, ownership of that buffer transfers to z
// with no copy; z's previous value (and any dynamic buffer it held) is
// released back to the cache first.
func (z *Int) Move(x *Int) *Int {
	if z == x {
		return z
	}
	z.destroyDynamic()
	*z = *x
	x.resetStatic()
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	if z.size < 0 {
		z.size = -z.size
	}
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.size = -z.size // 0 negates to 0
	return z
}

// SetZero sets z to 0 and returns z. If z held a dynamic buffer, it is
// released to the cache first.
func (z *Int) SetZero() *Int {
	z.destroyDynamic()
	return z
}

// SetOne sets z to 1 and returns z.
func (z *Int) SetOne() *Int {
	return z.setUint64Signed(false, 1)
}

// IsZero reports whether z == 0.
func (z *Int) IsZero() bool { return z.size == 0 }
