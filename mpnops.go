// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the raw slice-level primitives of the generic
// fallback: carry/borrow propagation across an arbitrary-length []Word.
// words.go builds the signed-magnitude operations on top of these.
//
// Grounded on the generic (non-assembly) mpn fallback loop shapes found
// in the retrieval pack, adapted to plain Go slices in place of
// unsafe.Slice-wrapped pointers.

package bigint

// addVV computes z = x + y for equal-length x, y (z must have at least
// len(x) capacity available), returning the outgoing carry.
func addVV(z, x, y []Word) Word {
	var c Word
	for i := range x {
		var c1 Word
		z[i], c1 = addWW(x[i], y[i], 0)
		var c2 Word
		z[i], c2 = addWW(z[i], 0, c)
		c = c1 | c2
	}
	return c
}

// subVV computes z = x - y for equal-length x, y, x >= y, returning the
// outgoing borrow (always 0 when x >= y as the caller guarantees).
func subVV(z, x, y []Word) Word {
	var b Word
	for i := range x {
		var b1 Word
		z[i], b1 = subWW(x[i], y[i], 0)
		var b2 Word
		z[i], b2 = subWW(z[i], 0, b)
		b = b1 | b2
	}
	return b
}

// mulAddVWW computes z = x*m + a (a single accumulated limb added into
// the lowest position), returning the outgoing high limb.
func mulAddVWW(z, x []Word, m, a Word) Word {
	c := a
	for i, xi := range x {
		lo, hi := mulWW(xi, m)
		var c1 Word
		lo, c1 = addWW(lo, c, 0)
		z[i] = lo
		c, _ = addWW(hi, 0, c1)
	}
	return c
}
