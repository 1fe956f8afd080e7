// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint implements signed arbitrary-precision integers with a
// small-value optimization: an Int whose value fits in two 64-bit limbs
// (128 bits) is held inline with no heap allocation; an Int whose value
// exceeds that budget transparently spills to a heap-allocated limb
// buffer. Both representations support the same operations, and the
// transition between them (promotion to heap storage, demotion back to
// inline storage) is invisible to callers beyond its effect on
// allocation.
//
// Like math/big.Int, a *Int is not safe for concurrent use: methods that
// mutate an Int must not be called concurrently on the same Int from
// multiple goroutines. Distinct Ints on distinct goroutines are
// independent.
//
// Building with the bigint_debug tag enables invariant assertions on
// the storage-class preconditions (promotion, demotion, and reading the
// active arm) that are compiled out otherwise. The zero padding of
// unused inline limbs is not asserted.
package bigint
