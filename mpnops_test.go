// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func TestAddVV(t *testing.T) {
	x := w(wordMax, 1)
	y := w(1, 1)
	z := make([]Word, 2)
	c := addVV(z, x, y)
	if c != 0 || cmpWords(z, w(0, 3)) != 0 {
		t.Errorf("addVV = %v carry %d, want [0 3] carry 0", z, c)
	}
}

func TestSubVV(t *testing.T) {
	x := w(0, 3)
	y := w(1, 1)
	z := make([]Word, 2)
	b := subVV(z, x, y)
	if b != 0 || cmpWords(z, w(wordMax, 1)) != 0 {
		t.Errorf("subVV = %v borrow %d, want [max 1] borrow 0", z, b)
	}
}

func TestMulAddVWW(t *testing.T) {
	x := w(2, 3)
	z := make([]Word, 2)
	c := mulAddVWW(z, x, 10, 5)
	// 2*10+5 = 25, 3*10 + carry(0) = 30
	if c != 0 || cmpWords(z, w(25, 30)) != 0 {
		t.Errorf("mulAddVWW = %v carry %d, want [25 30] carry 0", z, c)
	}
}
