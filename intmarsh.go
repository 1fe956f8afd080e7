// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the binary serialization format (a size field
// followed by |size| raw little-endian limbs) and layers Gob, Text, and
// JSON marshaling on top of it, the way math/big's intmarsh.go does:
// Gob adds a version byte ahead of the binary payload, JSON delegates
// to Text, Text is the decimal string.
//
// The binary format is host-specific (limb width, endianness, nails);
// it is not meant to move between differently-configured builds.

package bigint

import (
	"encoding/binary"
	"fmt"
)

// MarshalBinary implements encoding.BinaryMarshaler: a little-endian
// int32 signed limb count followed by that many little-endian Words.
func (x *Int) MarshalBinary() ([]byte, error) {
	mag := x.words()
	size := int32(len(mag))
	if x.neg() {
		size = -size
	}
	buf := make([]byte, 4+len(mag)*8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(size))
	for i, w := range mag {
		binary.LittleEndian.PutUint64(buf[4+i*8:4+(i+1)*8], uint64(w))
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It rejects any
// input whose declared size would leave a zero top limb.
func (z *Int) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("%w: binary bigint payload too short", ErrInvalidArgument)
	}
	size := int32(binary.LittleEndian.Uint32(data[0:4]))
	neg := size < 0
	n := int(size)
	if neg {
		n = -n
	}
	if len(data) != 4+n*8 {
		return fmt.Errorf("%w: binary bigint payload length mismatch", ErrInvalidArgument)
	}
	mag := make([]Word, n)
	for i := 0; i < n; i++ {
		mag[i] = Word(binary.LittleEndian.Uint64(data[4+i*8 : 4+(i+1)*8]))
	}
	if n > 0 && mag[n-1] == 0 {
		return fmt.Errorf("%w: binary bigint payload has a zero top limb", ErrInvalidArgument)
	}
	z.setFromWords(neg, mag)
	return nil
}

const intGobVersion byte = 1

// GobEncode implements gob.GobEncoder: a version byte followed by the
// binary encoding above.
func (x *Int) GobEncode() ([]byte, error) {
	bin, err := x.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(bin)+1)
	buf[0] = intGobVersion
	copy(buf[1:], bin)
	return buf, nil
}

// GobDecode implements gob.GobDecoder.
func (z *Int) GobDecode(data []byte) error {
	if len(data) == 0 {
		z.SetZero()
		return nil
	}
	if data[0] != intGobVersion {
		return fmt.Errorf("%w: unsupported bigint gob version %d", ErrInvalidArgument, data[0])
	}
	return z.UnmarshalBinary(data[1:])
}

// MarshalText implements encoding.TextMarshaler as the base-10 string.
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	if _, ok := z.SetString(string(text), 10); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidArgument, text)
	}
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the value as a bare
// decimal JSON number (not a quoted string), the common convention for
// arbitrary-precision integers in Go JSON encoders.
func (x *Int) MarshalJSON() ([]byte, error) {
	return x.MarshalText()
}

// UnmarshalJSON implements json.Unmarshaler, accepting either a bare
// number or a quoted string (some encoders quote large integers to
// dodge float64 round-tripping in other languages).
func (z *Int) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if _, ok := z.SetString(s, 10); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidArgument, data)
	}
	return nil
}
