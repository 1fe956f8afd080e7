// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"testing"
)

func TestStringText(t *testing.T) {
	x := NewInt(-255)
	if x.String() != "-255" {
		t.Errorf("String() = %q, want -255", x.String())
	}
	if x.Text(16) != "-ff" {
		t.Errorf("Text(16) = %q, want -ff", x.Text(16))
	}
	if x.Text(2) != "-11111111" {
		t.Errorf("Text(2) = %q, want -11111111", x.Text(2))
	}
}

func TestTextInvalidBasePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Text(1) should panic on an out-of-range base")
		}
	}()
	NewInt(5).Text(1)
}

func TestSetStringRoundTrip(t *testing.T) {
	var z Int
	if _, ok := z.SetString("-123456789012345678901234567890", 10); !ok {
		t.Fatalf("SetString failed to parse a valid decimal literal")
	}
	if z.String() != "-123456789012345678901234567890" {
		t.Errorf("round trip mismatch: got %s", z.String())
	}
}

func TestSetStringInvalidLeavesTargetUnchanged(t *testing.T) {
	var z Int
	z.SetInt64(7)
	if _, ok := z.SetString("not-a-number", 10); ok {
		t.Errorf("SetString should fail on garbage input")
	}
	if z.String() != "7" {
		t.Errorf("failed SetString must not mutate z, got %s", z.String())
	}
}

func TestSetStringErrWraps(t *testing.T) {
	var z Int
	_, err := z.SetStringErr("garbage", 10)
	if err == nil {
		t.Fatalf("SetStringErr should fail on garbage input")
	}
}

func TestFormatVerbs(t *testing.T) {
	x := NewInt(-255)
	cases := map[string]string{
		"%v": "-255",
		"%s": "-255",
		"%d": "-255",
		"%b": "-11111111",
		"%o": "-377",
		"%x": "-ff",
		"%X": "-FF",
	}
	for verb, want := range cases {
		got := fmt.Sprintf(verb, x)
		if got != want {
			t.Errorf("Sprintf(%s, -255) = %q, want %q", verb, got, want)
		}
	}
}

func TestFormatUnsupportedVerb(t *testing.T) {
	got := fmt.Sprintf("%q", NewInt(5))
	if got == "" {
		t.Errorf("unsupported verb should still produce diagnostic output")
	}
}

func TestScan(t *testing.T) {
	var z Int
	n, err := fmt.Sscan("-42", &z)
	if err != nil || n != 1 {
		t.Fatalf("Sscan failed: n=%d err=%v", n, err)
	}
	if z.String() != "-42" {
		t.Errorf("Scan result = %s, want -42", z.String())
	}
}

func TestScanInvalid(t *testing.T) {
	var z Int
	_, err := fmt.Sscan("", &z)
	if err == nil {
		t.Errorf("Scan should fail on an empty token")
	}
}
