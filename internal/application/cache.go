// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultYearCacheSize  = 256
	DefaultEventCacheSize = 4096
)

// cache is a bounded insert-if-absent memo. Concurrent first-time population of
// one key may compute twice; the values are identical so the last write wins.
type cache[K comparable, V any] struct {
	entries *lru.Cache[K, V]
}

func newCache[K comparable, V any](size int) (*cache[K, V], error) {
	entries, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("cache → %v", err)
	}
	return &cache[K, V]{entries: entries}, nil
}

func (c *cache[K, V]) getOrCompute(key K, compute func() (V, error)) (V, error) {
	if v, ok := c.entries.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	c.entries.Add(key, v)
	return v, nil
}

func (c *cache[K, V]) len() int {
	return c.entries.Len()
}

func (c *cache[K, V]) purge() {
	c.entries.Purge()
}
