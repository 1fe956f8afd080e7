// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !bigint_debug

package bigint

// checkInvariant is a no-op in non-debug builds; the compiler inlines
// and eliminates it entirely since cond is always discarded.
func checkInvariant(component, operation string, cond bool, msg string, args ...any) {}
