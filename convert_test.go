// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math"
	"testing"
)

func TestGetUint64(t *testing.T) {
	var v uint64
	if !NewUint(42).GetUint64(&v) || v != 42 {
		t.Errorf("GetUint64(42) = %d, ok mismatch", v)
	}
	if NewInt(-1).GetUint64(&v) {
		t.Errorf("GetUint64 should fail on a negative value")
	}
	big := new(Int).Lsh(NewInt(1), 64)
	if big.GetUint64(&v) {
		t.Errorf("GetUint64 should fail when the value overflows uint64")
	}
}

func TestGetInt64(t *testing.T) {
	var v int64
	if !NewInt(-42).GetInt64(&v) || v != -42 {
		t.Errorf("GetInt64(-42) = %d, ok mismatch", v)
	}
	if !NewInt(0).GetInt64(&v) || v != 0 {
		t.Errorf("GetInt64(0) = %d, ok mismatch", v)
	}
}

// TestGetInt64MinBoundary exercises the one case where the unsigned
// magnitude of a negative int64 (1<<63) is itself not representable as
// a positive int64: math.MinInt64 must still round-trip through GetInt64.
func TestGetInt64MinBoundary(t *testing.T) {
	x := NewInt(math.MinInt64)
	var v int64
	if !x.GetInt64(&v) || v != math.MinInt64 {
		t.Errorf("GetInt64(MinInt64) = %d, ok=%v, want %d, true", v, x.GetInt64(&v), int64(math.MinInt64))
	}

	// One past the boundary (magnitude 1<<63 + 1) must not fit.
	over := new(Int).SetUint64(1 << 63)
	over.AddWord(over, 1)
	over.Neg(over)
	if over.GetInt64(&v) {
		t.Errorf("GetInt64 should fail just beyond MinInt64")
	}

	// +(1<<63) itself (positive) must not fit in an int64 either.
	pos := new(Int).SetUint64(1 << 63)
	if pos.GetInt64(&v) {
		t.Errorf("GetInt64 should fail for +2^63, which overflows int64")
	}
}

func TestTryInt64Uint64(t *testing.T) {
	if _, err := NewInt(-1).TryUint64(); err == nil {
		t.Errorf("TryUint64(-1) should fail")
	}
	v, err := NewInt(7).TryInt64()
	if err != nil || v != 7 {
		t.Errorf("TryInt64(7) = %d, %v, want 7, nil", v, err)
	}
}

func TestSetFloat64(t *testing.T) {
	var z Int
	if _, err := z.SetFloat64(math.NaN()); err == nil {
		t.Errorf("SetFloat64(NaN) should fail")
	}
	if _, err := z.SetFloat64(math.Inf(1)); err == nil {
		t.Errorf("SetFloat64(+Inf) should fail")
	}
	if _, err := z.SetFloat64(3.9); err != nil || z.String() != "3" {
		t.Errorf("SetFloat64(3.9) = %s, want 3 (truncated toward zero)", z.String())
	}
	if _, err := z.SetFloat64(-3.9); err != nil || z.String() != "-3" {
		t.Errorf("SetFloat64(-3.9) = %s, want -3", z.String())
	}
	if _, err := z.SetFloat64(0); err != nil || !z.IsZero() {
		t.Errorf("SetFloat64(0) should give zero")
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	x := NewInt(123456789)
	if got := x.Float64(); got != 123456789.0 {
		t.Errorf("Float64() = %v, want 123456789", got)
	}
	neg := NewInt(-100)
	if got := neg.Float64(); got != -100.0 {
		t.Errorf("Float64() = %v, want -100", got)
	}
}
