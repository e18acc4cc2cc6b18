// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimd/storage"
)

func TestPutGetRemove(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	p := storage.Pool.TestData

	assert.Nil(t, p.Get(nonExistentKey), "missing key")
	assert.False(t, p.Has(nonExistentKey), "missing key exists")

	p.Put([]byte("key-one"), []byte("data-one"))
	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")))
	assert.True(t, p.Has([]byte("key-one")))

	// same key in another pool is independent
	assert.False(t, storage.Pool.Claims.Has([]byte("key-one")))

	p.Remove([]byte("key-one"))
	assert.Nil(t, p.Get([]byte("key-one")))
	assert.False(t, p.Has([]byte("key-one")))
}

func TestGetN(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	p := storage.Pool.TestData

	n, found := p.GetN([]byte("counter"))
	assert.False(t, found)
	assert.Equal(t, uint64(0), n)

	p.PutN([]byte("counter"), 0x0102030405060708)
	n, found = p.GetN([]byte("counter"))
	assert.True(t, found)
	assert.Equal(t, uint64(0x0102030405060708), n)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, p.Get([]byte("counter")))
}

func TestGetNB(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	p := storage.Pool.TestData

	n, b := p.GetNB([]byte("record"))
	assert.Equal(t, uint64(0), n)
	assert.Nil(t, b)

	p.Put([]byte("record"), []byte{0, 0, 0, 0, 0, 0, 0, 42, 'a', 'b'})
	n, b = p.GetNB([]byte("record"))
	assert.Equal(t, uint64(42), n)
	assert.Equal(t, []byte("ab"), b)

	p.Put([]byte("short"), []byte{0, 0, 0, 0, 0, 0, 0, 42})
	assert.Panics(t, func() { p.GetNB([]byte("short")) }, "truncated record")
}
