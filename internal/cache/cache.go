// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a bounded first-in-first-out cache to memoize
// compiled format patterns.
package cache

import (
	"slices"
	"sync"
)

// DefaultSize is the default size of a cache.
const DefaultSize = 1 << 10

// Cache is a bounded memo. When it grows beyond its size, the oldest entries
// are evicted first.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize is the maximum size of the cache. If it is zero, DefaultSize is used.
	//
	// If V implements Sizer, it is used to estimate size. Otherwise every
	// element is assumed to have size 1. The most recently added element is
	// never evicted, even if it alone exceeds MaxSize.
	//
	// MaxSize is not safe to mutate concurrently with calls to Get.
	MaxSize int64

	mu    sync.RWMutex
	m     map[K]V
	order []K // insertion order, oldest first
	n     int64
}

// Get returns the element associated with k, calling fill to create it if it
// is missing. fill is called without holding the lock, so concurrent misses
// on the same key may call it more than once; only the first result is kept.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.m[k]; ok {
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	c.m[k] = nv
	c.order = append(c.order, k)
	c.n += size(nv)
	for c.n > c.limit() && len(c.order) > 1 {
		c.removeLocked(0)
	}
	return nv
}

func (c *Cache[K, V]) limit() int64 {
	if c.MaxSize == 0 {
		return DefaultSize
	}
	return c.MaxSize
}

// Len returns the number of elements in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Evict removes the element for k from the cache. If there is no such
// element, Evict is a no-op.
func (c *Cache[K, V]) Evict(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := slices.Index(c.order, k); i >= 0 {
		c.removeLocked(i)
	}
}

// removeLocked removes the i-th oldest element. c.mu must be held for writing.
func (c *Cache[K, V]) removeLocked(i int) {
	k := c.order[i]
	c.n -= size(c.m[k])
	delete(c.m, k)
	c.order = slices.Delete(c.order, i, i+1)
}

// Flush removes all elements from the cache.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
	c.order = c.order[:0]
	c.n = 0
}

// Sizer is an optional interface for a value to report its own size. The
// reported size must be positive and never change for the same receiver.
type Sizer interface {
	Size() int64
}

func size[V any](v V) int64 {
	if s, ok := any(v).(Sizer); ok {
		return s.Size()
	}
	return 1
}
