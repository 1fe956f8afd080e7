// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the limb-buffer cache: a size-classed free list
// of previously-allocated limb buffers that promotion and regrowth draw
// from before falling back to a fresh allocation.
//
// A thread-local cache would save the mutex on the fast path, but Go
// exposes no public per-goroutine storage, so this is a single
// process-wide cache guarded by a mutex instead; see DESIGN.md.

package bigint

import "sync"

const (
	// maxCachedLimbs is the largest size class the cache tracks. Buffers
	// larger than this are always allocated fresh and always freed
	// (left to the garbage collector) on release.
	maxCachedLimbs = 10

	// maxCachedPerClass bounds how many buffers of a single size class
	// the cache holds at once.
	maxCachedPerClass = 100
)

// limbCache is a size-classed free list of []Word buffers.
type limbCache struct {
	mu      sync.Mutex
	classes [maxCachedLimbs + 1][]([]Word) // classes[n] holds buffers of len==cap==n
}

var globalLimbCache limbCache

// take returns a buffer with length and capacity exactly n, either drawn
// from the cache or freshly allocated. The returned buffer's contents
// are not zeroed; callers that need zeroed limbs must clear them.
func (c *limbCache) take(n int) []Word {
	if n <= 0 {
		return nil
	}
	if n <= maxCachedLimbs {
		c.mu.Lock()
		if bucket := c.classes[n]; len(bucket) > 0 {
			buf := bucket[len(bucket)-1]
			c.classes[n] = bucket[:len(bucket)-1]
			c.mu.Unlock()
			return buf
		}
		c.mu.Unlock()
	}
	return make([]Word, n, n)
}

// give returns buf to the cache if its size class has room, or lets it
// be collected otherwise. buf must not be used by the caller afterwards.
func (c *limbCache) give(buf []Word) {
	n := cap(buf)
	if n == 0 || n > maxCachedLimbs {
		return
	}
	buf = buf[:n]
	c.mu.Lock()
	if len(c.classes[n]) < maxCachedPerClass {
		c.classes[n] = append(c.classes[n], buf)
	}
	c.mu.Unlock()
}

// clear empties every size class, dropping references so the buffers can
// be collected. Intended for tests and for process-exit teardown.
func (c *limbCache) clear() {
	c.mu.Lock()
	for i := range c.classes {
		c.classes[i] = nil
	}
	c.mu.Unlock()
}
