// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/claimd/fault"
)

// Access - low level database access shared by all pools
//
// while a transaction is open, writes are buffered in a batch and
// reads consult the batch overlay first
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - the Access implementation
type AccessData struct {
	sync.RWMutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

// Begin - start buffering writes
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

// InUse - true while a transaction is open
func (d *AccessData) InUse() bool {
	d.RLock()
	defer d.RUnlock()
	return d.inUse
}

// Put - buffered inside a transaction, written through otherwise
func (d *AccessData) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		err := d.db.Put(key, value, nil)
		fault.PanicIfError("storage put", err)
		return
	}

	// the batch keeps its own copy, the overlay needs one too
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(OpPut, string(key), v)
	d.batch.Put(key, value)
}

// Delete - buffered inside a transaction, written through otherwise
func (d *AccessData) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		err := d.db.Delete(key, nil)
		fault.PanicIfError("storage delete", err)
		return
	}

	d.cache.Set(OpDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - atomically write the batch and end the transaction
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotStarted
	}

	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

// Abort - discard the batch and end the transaction
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()
	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// Get - read a value, leveldb.ErrNotFound if absent
func (d *AccessData) Get(key []byte) ([]byte, error) {
	d.RLock()
	defer d.RUnlock()

	if d.inUse {
		value, op, found := d.cache.Get(string(key))
		if found {
			if OpDelete == op {
				return nil, leveldb.ErrNotFound
			}
			return value, nil
		}
	}
	return d.db.Get(key, nil)
}

// Has - check existence of a key
func (d *AccessData) Has(key []byte) (bool, error) {
	d.RLock()
	defer d.RUnlock()

	if d.inUse {
		_, op, found := d.cache.Get(string(key))
		if found {
			return OpPut == op, nil
		}
	}
	return d.db.Has(key, nil)
}

// Iterator - iterate over committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
