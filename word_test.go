// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func TestAddWW(t *testing.T) {
	cases := []struct {
		x, y, c   Word
		sum, cOut Word
	}{
		{0, 0, 0, 0, 0},
		{1, 1, 0, 2, 0},
		{wordMax, 1, 0, 0, 1},
		{wordMax, wordMax, 1, wordMax, 1},
	}
	for _, c := range cases {
		sum, cOut := addWW(c.x, c.y, c.c)
		if sum != c.sum || cOut != c.cOut {
			t.Errorf("addWW(%d,%d,%d) = %d,%d, want %d,%d", c.x, c.y, c.c, sum, cOut, c.sum, c.cOut)
		}
	}
}

func TestSubWW(t *testing.T) {
	cases := []struct {
		x, y, b    Word
		diff, bOut Word
	}{
		{5, 3, 0, 2, 0},
		{0, 1, 0, wordMax, 1},
		{0, 0, 1, wordMax, 1},
	}
	for _, c := range cases {
		diff, bOut := subWW(c.x, c.y, c.b)
		if diff != c.diff || bOut != c.bOut {
			t.Errorf("subWW(%d,%d,%d) = %d,%d, want %d,%d", c.x, c.y, c.b, diff, bOut, c.diff, c.bOut)
		}
	}
}

func TestMulWW(t *testing.T) {
	lo, hi := mulWW(wordMax, wordMax)
	// (2^64-1)^2 == 2^128 - 2^65 + 1
	if hi != wordMax-1 || lo != 1 {
		t.Errorf("mulWW(max,max) = %d,%d, want %d,%d", lo, hi, wordMax-1, 1)
	}
}

func TestDivWW(t *testing.T) {
	lo, hi := mulWW(123456789, 987654321)
	q, r := divWW(hi, lo, 987654321)
	if q != 123456789 || r != 0 {
		t.Errorf("divWW round trip = %d,%d, want %d,%d", q, r, 123456789, 0)
	}
}

func TestNlz(t *testing.T) {
	if got := nlz(1); got != wordBits-1 {
		t.Errorf("nlz(1) = %d, want %d", got, wordBits-1)
	}
	if got := nlz(wordMax); got != 0 {
		t.Errorf("nlz(max) = %d, want 0", got)
	}
}

func TestSizeFromLoHi(t *testing.T) {
	cases := []struct {
		lo, hi Word
		want   int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 2},
		{1, 1, 2},
	}
	for _, c := range cases {
		if got := sizeFromLoHi(c.lo, c.hi); got != c.want {
			t.Errorf("sizeFromLoHi(%d,%d) = %d, want %d", c.lo, c.hi, got, c.want)
		}
	}
}
