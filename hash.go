// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements a seeded Hash helper over hash/maphash, for
// callers that want to key a map or set by value rather than by
// pointer identity (an *Int address says nothing about the number it
// holds).

package bigint

import (
	"encoding/binary"
	"hash/maphash"
)

// Hash returns a hash of x's value under the given seed: equal values
// always hash equal regardless of storage class (static vs dynamic) or
// limb padding, and the sign is mixed in separately so x and -x never
// collide through the magnitude bytes alone.
func (x *Int) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(x.Sign() + 1))
	var buf [8]byte
	for _, w := range x.words() {
		binary.LittleEndian.PutUint64(buf[:], uint64(w))
		h.Write(buf[:])
	}
	return h.Sum64()
}
