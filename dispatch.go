// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the dispatcher: the public arithmetic, bitwise,
// comparison, and number-theoretic API on *Int. Every binary operation
// follows the same shape: try the static kernel when every operand is
// static, fall through to the generic words path (words.go) otherwise
// or on kernel overflow, then write the result into z's static or
// dynamic arm as its size dictates.

package bigint

// limbPair extracts a read-only (lo, hi, asize) view of x's magnitude.
// Word values are copied, so the result is safe to hold even if the
// caller later mutates x (including via an aliased z == x).
func limbPair(x *Int) (lo, hi Word, asize int) {
	w := x.words()
	switch len(w) {
	case 2:
		return w[0], w[1], 2
	case 1:
		return w[0], 0, 1
	default:
		return 0, 0, 0
	}
}

// setStaticSigned installs a kernel result (sign, lo, hi) into z, which
// the caller must already have made static (ensureStaticResult). A zero
// sign resets z to static zero.
func (z *Int) setStaticSigned(sign int, lo, hi Word) {
	if sign == 0 {
		z.resetStatic()
		return
	}
	z.setStaticLimbs(sign < 0, lo, hi)
}

// setFromWords installs an arbitrary-length signed magnitude into z,
// choosing the static or dynamic arm by its normalized length. When z is
// already dynamic this reuses z's existing buffer in place (via
// promote.go's promote/demote) rather than always releasing it and
// allocating fresh.
func (z *Int) setFromWords(neg bool, mag []Word) *Int {
	mag = normalizeWords(mag)
	if len(mag) <= inlineLimbs {
		if !z.isStatic() {
			copy(z.dyn, mag)
			z.size = signedSize(neg, len(mag))
			z.demote() // always succeeds: len(mag) <= inlineLimbs
			return z
		}
		z.resetStatic()
		if len(mag) > 0 {
			z.setStaticLimbs(neg, mag...)
		}
		return z
	}
	switch {
	case z.isStatic():
		z.promote(len(mag))
	case int(z.alloc) < len(mag):
		z.destroyDynamic()
		z.promote(len(mag))
	}
	copy(z.dyn, mag)
	z.size = signedSize(neg, len(mag))
	return z
}

// signedSize packs a magnitude length and sign into Int's signed size
// field: negative for neg, zero if n == 0 regardless of neg (zero has no
// sign).
func signedSize(neg bool, n int) int32 {
	size := int32(n)
	if neg && size != 0 {
		size = -size
	}
	return size
}

// Add sets z = x + y and returns z.
func (z *Int) Add(x, y *Int) *Int { return z.addSub(true, x, y) }

// Sub sets z = x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int { return z.addSub(false, x, y) }

func (z *Int) addSub(add bool, x, y *Int) *Int {
	if x.isStatic() && y.isStatic() {
		lo1, hi1, _ := limbPair(x)
		lo2, hi2, _ := limbPair(y)
		sign, lo, hi, ok := addSub2(add, x.Sign(), lo1, hi1, y.Sign(), lo2, hi2)
		if ok {
			z.ensureStaticResult()
			z.setStaticSigned(sign, lo, hi)
			return z
		}
	}
	xNeg, xMag := x.neg(), x.words()
	yNeg, yMag := y.neg(), y.words()
	if !add {
		yNeg = !yNeg
	}
	neg, mag := addSubMagnitudeSigned(xNeg, xMag, yNeg, yMag)
	return z.setFromWords(neg, mag)
}

// AddWord sets z = x + w (w treated as an unsigned small constant) and
// returns z.
func (z *Int) AddWord(x *Int, w Word) *Int {
	var y Int
	y.SetUint64(uint64(w))
	return z.Add(x, &y)
}

// Mul sets z = x * y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	if x.isStatic() && y.isStatic() {
		lo1, hi1, asize1 := limbPair(x)
		lo2, hi2, asize2 := limbPair(y)
		sign, lo, hi, ok, _ := mul2(x.Sign(), lo1, hi1, asize1, y.Sign(), lo2, hi2, asize2)
		if ok {
			z.ensureStaticResult()
			z.setStaticSigned(sign, lo, hi)
			return z
		}
	}
	neg := x.neg() != y.neg()
	mag := mulMagnitude(x.words(), y.words())
	if len(mag) == 0 {
		neg = false
	}
	return z.setFromWords(neg, mag)
}

// MulAdd sets z = x*y + addend and returns z, implemented as a static
// multiply followed by a static add.
func (z *Int) MulAdd(x, y, addend *Int) *Int {
	var prod Int
	prod.Mul(x, y)
	return z.Add(&prod, addend)
}

// Square sets z = x*x and returns z.
func (z *Int) Square(x *Int) *Int {
	if x.isStatic() {
		lo, hi, asize := limbPair(x)
		rlo, rhi, ok, _ := square2(lo, hi, asize)
		if ok {
			sign := 0
			if rlo != 0 || rhi != 0 {
				sign = 1
			}
			z.ensureStaticResult()
			z.setStaticSigned(sign, rlo, rhi)
			return z
		}
	}
	mag := mulMagnitude(x.words(), x.words())
	return z.setFromWords(false, mag)
}

// Neg sets z = -x and returns z. (Also defined in int.go as a pure
// storage-level operation; this is the same method, documented here
// because it is part of the dispatcher's public arithmetic surface.)

// Lsh sets z = x << s and returns z.
func (z *Int) Lsh(x *Int, s uint) *Int {
	if x.isStatic() {
		lo, hi, asize := limbPair(x)
		rlo, rhi, ok, _ := lsh2(lo, hi, asize, s)
		if ok {
			z.ensureStaticResult()
			z.setStaticSigned(x.Sign(), rlo, rhi)
			return z
		}
	}
	mag := shlWords(x.words(), s)
	neg := x.neg() && len(mag) > 0
	return z.setFromWords(neg, mag)
}

// Rsh sets z = x >> s (arithmetic shift: floor division by 2^s) and
// returns z.
func (z *Int) Rsh(x *Int, s uint) *Int {
	if !x.neg() {
		if x.isStatic() {
			lo, hi, _ := limbPair(x)
			rlo, rhi := rsh2(lo, hi, s)
			z.ensureStaticResult()
			sign := 0
			if rlo != 0 || rhi != 0 {
				sign = 1
			}
			z.setStaticSigned(sign, rlo, rhi)
			return z
		}
		mag := shrWords(x.words(), s)
		return z.setFromWords(false, mag)
	}
	// (-x) >> s == ^(x-1) >> s == ^((x-1)>>s) == -(((x-1)>>s)+1), the
	// standard two's-complement arithmetic-shift identity.
	var t Int
	t.Sub(x, NewInt(-1)) // t = x + 1, still negative (or zero)
	t.Neg(&t)            // t = -x - 1 == |x| - 1, now nonnegative
	t.Rsh(&t, s)
	t.AddWord(&t, 1)
	return z.Neg(&t)
}

// And sets z = x & y and returns z.
func (z *Int) And(x, y *Int) *Int {
	if x.isStatic() && y.isStatic() {
		lo1, hi1, _ := limbPair(x)
		lo2, hi2, _ := limbPair(y)
		lo, hi, ok := and2(x.Sign(), lo1, hi1, y.Sign(), lo2, hi2)
		if ok {
			z.ensureStaticResult()
			sign := 0
			if lo != 0 || hi != 0 {
				sign = 1
			}
			z.setStaticSigned(sign, lo, hi)
			return z
		}
	}
	neg, mag := andMagnitudeSigned(x.neg(), x.words(), y.neg(), y.words())
	if len(normalizeWords(mag)) == 0 {
		neg = false
	}
	return z.setFromWords(neg, mag)
}

// Or sets z = x | y and returns z.
func (z *Int) Or(x, y *Int) *Int {
	if x.isStatic() && y.isStatic() {
		lo1, hi1, _ := limbPair(x)
		lo2, hi2, _ := limbPair(y)
		lo, hi, ok := or2(x.Sign(), lo1, hi1, y.Sign(), lo2, hi2)
		if ok {
			z.ensureStaticResult()
			sign := 0
			if lo != 0 || hi != 0 {
				sign = 1
			}
			if x.neg() || y.neg() {
				sign = -1
			}
			z.setStaticSigned(sign, lo, hi)
			return z
		}
	}
	neg, mag := orMagnitudeSigned(x.neg(), x.words(), y.neg(), y.words())
	return z.setFromWords(neg, mag)
}

// Xor sets z = x ^ y and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	if x.isStatic() && y.isStatic() {
		lo1, hi1, _ := limbPair(x)
		lo2, hi2, _ := limbPair(y)
		lo, hi, ok := xor2(x.Sign(), lo1, hi1, y.Sign(), lo2, hi2)
		if ok {
			z.ensureStaticResult()
			neg := x.neg() != y.neg()
			sign := 0
			if lo != 0 || hi != 0 {
				if neg {
					sign = -1
				} else {
					sign = 1
				}
			}
			z.setStaticSigned(sign, lo, hi)
			return z
		}
	}
	neg, mag := xorMagnitudeSigned(x.neg(), x.words(), y.neg(), y.words())
	if len(normalizeWords(mag)) == 0 {
		neg = false
	}
	return z.setFromWords(neg, mag)
}

// AndNot sets z = x &^ y (x & ^y) and returns z.
func (z *Int) AndNot(x, y *Int) *Int {
	var ny Int
	ny.Not(y)
	return z.And(x, &ny)
}

// Not sets z = ^x (== -(x+1)) and returns z.
func (z *Int) Not(x *Int) *Int {
	if x.isStatic() {
		lo, hi, _ := limbPair(x)
		rlo, rhi, ok := not2(x.Sign(), lo, hi)
		if ok {
			z.ensureStaticResult()
			sign := 1
			if x.Sign() >= 0 {
				sign = -1
			}
			if rlo == 0 && rhi == 0 {
				sign = 0
			}
			z.setStaticSigned(sign, rlo, rhi)
			return z
		}
	}
	if x.Sign() >= 0 {
		mag := addMagnitude(x.words(), []Word{1})
		return z.setFromWords(true, mag)
	}
	mag := subMagnitude(x.words(), []Word{1})
	return z.setFromWords(false, mag)
}

// QuoRem sets z = x quo y (truncated toward zero), r = x rem y, and
// returns (z, r). Panics on division by zero, matching math/big's
// convention of treating division by a manifest zero as a programmer
// error; see (*Int) QuoRemChecked for the failing form.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	if y.IsZero() {
		panic("bigint: division by zero")
	}
	if x.isStatic() && y.isStatic() {
		lo1, hi1, _ := limbPair(x)
		lo2, hi2, asize2 := limbPair(y)
		qlo, qhi, rlo, rhi := divRem2(lo1, hi1, lo2, hi2, asize2)
		qSign := x.Sign() * y.Sign()
		if qlo == 0 && qhi == 0 {
			qSign = 0
		}
		rSign := x.Sign()
		if rlo == 0 && rhi == 0 {
			rSign = 0
		}
		r.ensureStaticResult()
		r.setStaticSigned(rSign, rlo, rhi)
		z.ensureStaticResult()
		z.setStaticSigned(qSign, qlo, qhi)
		return z, r
	}
	qMag, rMag := divModWords(x.words(), y.words())
	qNeg := x.neg() != y.neg() && len(qMag) > 0
	rNeg := x.neg() && len(rMag) > 0
	r.setFromWords(rNeg, rMag)
	return z.setFromWords(qNeg, qMag), r
}

// Quo sets z = x quo y (truncated division) and returns z.
func (z *Int) Quo(x, y *Int) *Int {
	var r Int
	q, _ := z.QuoRem(x, y, &r)
	return q
}

// Rem sets z = x rem y (truncated remainder, sign of the dividend) and
// returns z.
func (z *Int) Rem(x, y *Int) *Int {
	var q Int
	_, r := q.QuoRem(x, y, z)
	return r
}

// QuoRemChecked is QuoRem's failing form: it reports ErrDivisionByZero
// instead of panicking when y == 0.
func (z *Int) QuoRemChecked(x, y, r *Int) (*Int, *Int, error) {
	if y.IsZero() {
		return z, r, ErrDivisionByZero
	}
	q, rem := z.QuoRem(x, y, r)
	return q, rem, nil
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.Sign() != y.Sign():
		if x.Sign() < y.Sign() {
			return -1
		}
		return 1
	case x.Sign() == 0:
		return 0
	default:
		c := CmpAbs(x, y)
		if x.Sign() < 0 {
			return -c
		}
		return c
	}
}

// CmpAbs compares |x| and |y|, returning -1, 0, or +1.
func CmpAbs(x, y *Int) int {
	if x.isStatic() && y.isStatic() {
		lo1, hi1, _ := limbPair(x)
		lo2, hi2, _ := limbPair(y)
		return cmpMag2(lo1, hi1, lo2, hi2)
	}
	return cmpWords(x.words(), y.words())
}

// Gcd sets z = gcd(|x|, |y|) and returns z. gcd(0, 0) == 0.
func (z *Int) Gcd(x, y *Int) *Int {
	if x.isStatic() && y.isStatic() {
		lo1, _, asize1 := limbPair(x)
		lo2, _, asize2 := limbPair(y)
		if asize1 <= 1 && asize2 <= 1 {
			z.ensureStaticResult()
			g := gcd1(lo1, lo2)
			sign := 0
			if g != 0 {
				sign = 1
			}
			z.setStaticSigned(sign, g, 0)
			return z
		}
	}
	mag := gcdWords(normalizeWords(x.words()), normalizeWords(y.words()))
	return z.setFromWords(false, mag)
}

// Lcm sets z = lcm(|x|, |y|) and returns z. lcm(0, y) == 0.
func (z *Int) Lcm(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return z.SetZero()
	}
	var g, xq Int
	g.Gcd(x, y)
	xq.Quo(x, &g)
	return z.Mul(&xq, y).Abs(z)
}

// ModSquare sets z = (x*x) mod m and returns z. m must be nonzero.
func (z *Int) ModSquare(x, m *Int) *Int {
	if m.IsZero() {
		panic("bigint: division by zero")
	}
	if x.isStatic() && m.isStatic() {
		loX, _, asizeX := limbPair(x)
		loM, _, asizeM := limbPair(m)
		if asizeX <= 1 && asizeM <= 1 {
			z.ensureStaticResult()
			r := modSquare1(loX, loM)
			sign := 0
			if r != 0 {
				sign = 1
			}
			z.setStaticSigned(sign, r, 0)
			return z
		}
	}
	sq := mulMagnitude(x.words(), x.words())
	r := modWords(sq, m.words())
	return z.setFromWords(false, r)
}

// Sqrt sets z = floor(sqrt(x)) and returns (z, nil), or leaves z
// unchanged and returns ErrDomain if x < 0.
func (z *Int) Sqrt(x *Int) (*Int, error) {
	if x.neg() {
		return z, ErrDomain
	}
	s := sqrtWords(x.words())
	return z.setFromWords(false, s), nil
}

// SqrtRem sets z = floor(sqrt(x)), rem = x - z*z, and returns (z, rem,
// nil), or leaves both unchanged and returns ErrDomain if x < 0.
func (z *Int) SqrtRem(x *Int, rem *Int) (*Int, *Int, error) {
	if x.neg() {
		return z, rem, ErrDomain
	}
	s, r := sqrtRemWords(x.words())
	rem.setFromWords(false, r)
	return z.setFromWords(false, s), rem, nil
}

// Root sets z = x^(1/n) truncated toward zero (floor(|x|^(1/n)) with
// x's sign) and returns (z, nil) for n >= 1. An even
// n with x < 0 returns ErrDomain and leaves z unchanged (there is no
// real even-degree root of a negative value).
func (z *Int) Root(x *Int, n uint) (*Int, error) {
	if n == 0 {
		return z, ErrInvalidArgument
	}
	if x.neg() && n%2 == 0 {
		return z, ErrDomain
	}
	r := rootWords(x.words(), n)
	return z.setFromWords(x.neg(), r), nil
}

// RootRem sets z = x^(1/n) truncated toward zero, rem = x - z^n, and returns (z, rem,
// nil) under the same domain rules as Root.
func (z *Int) RootRem(x *Int, n uint, rem *Int) (*Int, *Int, error) {
	if n == 0 {
		return z, rem, ErrInvalidArgument
	}
	if x.neg() && n%2 == 0 {
		return z, rem, ErrDomain
	}
	r, rm := rootRemWords(x.words(), n)
	rem.setFromWords(x.neg() && len(rm) > 0, rm)
	return z.setFromWords(x.neg(), r), rem, nil
}

// ProbablyPrime reports whether x is probably prime, using at most n
// Miller-Rabin rounds drawn from a fixed set of 12 witnesses (n <= 0,
// or any n >= 12, uses the whole set).
// Negative x is never prime.
func (x *Int) ProbablyPrime(n int) bool {
	if x.neg() {
		return false
	}
	return probablyPrimeWords(x.words(), n)
}
