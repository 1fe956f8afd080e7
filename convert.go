// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements interop with native int64/uint64/float64, in
// both of the two error-reporting shapes this package supports: the
// failing form (SetFloat64, TryInt64/TryUint64 returning (T, error))
// and the two-value form (GetInt64/GetUint64 writing through an
// out-parameter and returning a success bool).
//
// The float64 conversion contract (domain error on non-finite values,
// truncation towards zero otherwise) mirrors mp++'s real128 interop.

package bigint

import "math"

// GetUint64 attempts to set *rop to x's value and reports success. It
// fails (leaving *rop untouched) if x is negative or does not fit in a
// uint64.
func (x *Int) GetUint64(rop *uint64) bool {
	if x.neg() {
		return false
	}
	w := x.words()
	switch len(w) {
	case 0:
		*rop = 0
	case 1:
		*rop = uint64(w[0])
	default:
		return false
	}
	return true
}

// GetInt64 attempts to set *rop to x's value and reports success. It
// fails (leaving *rop untouched) if x does not fit in an int64.
func (x *Int) GetInt64(rop *int64) bool {
	w := x.words()
	switch len(w) {
	case 0:
		*rop = 0
		return true
	case 1:
		v := w[0]
		if x.neg() {
			if v <= 1<<63 {
				*rop = -int64(v)
				return true
			}
			return false
		}
		if v < 1<<63 {
			*rop = int64(v)
			return true
		}
		return false
	default:
		return false
	}
}

// TryInt64 is GetInt64's failing form: it returns ErrOverflow instead
// of false when x does not fit in an int64.
func (x *Int) TryInt64() (int64, error) {
	var v int64
	if !x.GetInt64(&v) {
		return 0, ErrOverflow
	}
	return v, nil
}

// TryUint64 is GetUint64's failing form.
func (x *Int) TryUint64() (uint64, error) {
	var v uint64
	if !x.GetUint64(&v) {
		return 0, ErrOverflow
	}
	return v, nil
}

// SetFloat64 sets z to x, truncated towards zero, and returns (z, nil).
// It returns ErrDomain and leaves z unchanged if x is NaN or infinite.
func (z *Int) SetFloat64(x float64) (*Int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return z, ErrDomain
	}
	if x == 0 {
		z.SetZero()
		return z, nil
	}
	neg := math.Signbit(x)
	x = math.Trunc(math.Abs(x))
	mant, exp := math.Frexp(x) // x == mant * 2^exp, 0.5 <= mant < 1
	const mantissaBits = 53
	mantInt := uint64(mant * (1 << mantissaBits))
	e := exp - mantissaBits

	var v Int
	v.SetUint64(mantInt)
	switch {
	case e > 0:
		v.Lsh(&v, uint(e))
	case e < 0:
		v.Rsh(&v, uint(-e))
	}
	z.Set(&v)
	if neg {
		z.Neg(z)
	}
	return z, nil
}

// Float64 returns the float64 nearest x, with the usual lossy rounding
// once x exceeds float64's mantissa width.
func (x *Int) Float64() float64 {
	w := x.words()
	var f float64
	for i := len(w) - 1; i >= 0; i-- {
		f = f*18446744073709551616.0 + float64(w[i]) // f*2^64 + limb
	}
	if x.neg() {
		f = -f
	}
	return f
}
