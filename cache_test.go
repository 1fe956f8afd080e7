// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimbCacheTakeGive(t *testing.T) {
	var c limbCache
	defer c.clear()

	buf := c.take(4)
	require.Len(t, buf, 4)
	require.Equal(t, 4, cap(buf))

	buf[0] = 42
	c.give(buf)

	buf2 := c.take(4)
	require.Len(t, buf2, 4)
	require.Equal(t, Word(42), buf2[0], "take should hand back a buffer previously released by give")
}

func TestLimbCacheZeroLength(t *testing.T) {
	var c limbCache
	require.Nil(t, c.take(0))
	require.Nil(t, c.take(-1))
}

func TestLimbCacheBeyondMaxClassNotCached(t *testing.T) {
	var c limbCache
	defer c.clear()

	big := c.take(maxCachedLimbs + 5)
	require.Len(t, big, maxCachedLimbs+5)
	c.give(big) // should be silently dropped, not cached

	for _, bucket := range c.classes {
		require.Empty(t, bucket, "oversized buffer must never be retained in any size class")
	}
}

func TestLimbCachePerClassBound(t *testing.T) {
	var c limbCache
	defer c.clear()

	for i := 0; i < maxCachedPerClass+10; i++ {
		c.give(make([]Word, 3, 3))
	}
	require.LessOrEqual(t, len(c.classes[3]), maxCachedPerClass)
}

func TestLimbCacheClear(t *testing.T) {
	var c limbCache
	c.give(make([]Word, 2, 2))
	require.NotEmpty(t, c.classes[2])
	c.clear()
	for _, bucket := range c.classes {
		require.Empty(t, bucket)
	}
}
