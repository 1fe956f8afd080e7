// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements text conversion: String/SetString/Format/Scan,
// layered the way math/big's intconv.go is (Format and Scan both funnel
// through the same base-B primitives SetString/String use).

package bigint

import "fmt"

// String returns the base-10 representation of x.
func (x *Int) String() string {
	return wordsToBaseString(x.neg(), x.words(), 10)
}

// Text returns the base-B representation of x, 2 <= base <= 62.
func (x *Int) Text(base int) string {
	if base < 2 || base > 62 {
		panic("bigint: invalid base")
	}
	return wordsToBaseString(x.neg(), x.words(), base)
}

// SetString sets z to the value of s in the given base (0 means
// auto-detect a 0x/0b/0 prefix, defaulting to 10) and reports success;
// on failure z is left unchanged. This is the two-value error-reporting
// form for string parsing.
func (z *Int) SetString(s string, base int) (*Int, bool) {
	neg, mag, err := parseBaseString(s, base)
	if err != nil {
		return nil, false
	}
	z.setFromWords(neg, mag)
	return z, true
}

// SetStringErr is SetString's failing form, wrapping the parse error
// with a stack trace via github.com/pkg/errors for CLI callers.
func (z *Int) SetStringErr(s string, base int) (*Int, error) {
	neg, mag, err := parseBaseString(s, base)
	if err != nil {
		return z, wrapParseError(err, s)
	}
	z.setFromWords(neg, mag)
	return z, nil
}

// Format implements fmt.Formatter, supporting %v, %s, %d (base 10),
// %b (base 2), %o (base 8), %x/%X (base 16, lowercase/uppercase).
func (x *Int) Format(s fmt.State, verb rune) {
	var base int
	switch verb {
	case 'v', 's', 'd':
		base = 10
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'x', 'X':
		base = 16
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, x.String())
		return
	}
	text := wordsToBaseString(x.neg(), x.words(), base)
	if verb == 'X' {
		text = toUpperHex(text)
	}
	fmt.Fprint(s, text)
}

func toUpperHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Scan implements fmt.Scanner, reading a base-10 signed integer token.
func (z *Int) Scan(s fmt.ScanState, verb rune) error {
	s.SkipSpace()
	tok, err := s.Token(false, func(r rune) bool {
		return r == '+' || r == '-' || (r >= '0' && r <= '9')
	})
	if err != nil {
		return err
	}
	if _, ok := z.SetString(string(tok), 10); !ok {
		return fmt.Errorf("bigint: invalid syntax %q", tok)
	}
	return nil
}
