// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build bigint_debug

package bigint

import "github.com/sirupsen/logrus"

// checkInvariant logs and aborts the process (via logrus.Fatalf) when
// cond is false. Only compiled into debug builds (-tags bigint_debug);
// invariant_release.go supplies a zero-cost no-op for normal builds.
// Violations here are storage-class preconditions the dispatcher is
// supposed to guarantee by construction — a failure means a bug in this
// package, not bad caller input.
func checkInvariant(component, operation string, cond bool, msg string, args ...any) {
	if cond {
		return
	}
	logrus.WithFields(logrus.Fields{
		"component": component,
		"operation": operation,
	}).Fatalf(msg, args...)
}
