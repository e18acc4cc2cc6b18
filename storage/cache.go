// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Operation - the kind of pending write held in the cache
type Operation int

// pending write kinds
const (
	OpPut Operation = iota
	OpDelete
)

// Cache - overlay of the writes pending in the current batch
type Cache interface {
	Get(string) ([]byte, Operation, bool)
	Set(Operation, string, []byte)
	Clear()
	Size() int
}

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    Operation
	value []byte
}

// entries live exactly as long as the transaction that wrote them
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - pending value and operation for a key
func (c *dbCache) Get(key string) ([]byte, Operation, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, OpPut, false
	}

	data := obj.(cacheData)
	return data.value, data.op, true
}

// Set - record a pending operation, replacing any earlier one
func (c *dbCache) Set(op Operation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

// Clear - drop all pending operations
func (c *dbCache) Clear() {
	c.cache.Flush()
}

// Size - number of keys with pending operations
func (c *dbCache) Size() int {
	return c.cache.ItemCount()
}
