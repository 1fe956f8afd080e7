// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds surfaced at the API boundary. Use errors.Is to
// test a returned error against one of these.
var (
	ErrDivisionByZero  = fmt.Errorf("bigint: division by zero")
	ErrDomain          = fmt.Errorf("bigint: domain error")
	ErrOverflow        = fmt.Errorf("bigint: overflow")
	ErrInvalidArgument = fmt.Errorf("bigint: invalid argument")
)

// wrapParseError attaches a stack trace to a string-parse failure via
// github.com/pkg/errors, since these are the one class of error this
// package expects a CLI caller to print diagnostically rather than just
// branch on.
func wrapParseError(err error, input string) error {
	return errors.Wrapf(err, "parsing %q", input)
}
