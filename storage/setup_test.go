// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/storage"
)

func TestReinitialise(t *testing.T) {
	name, teardown := setup(t)
	defer teardown()

	err := storage.Initialise(name, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err)

	storage.Pool.TestData.Put([]byte("persist"), []byte("yes"))
	storage.Finalise()

	err = storage.Initialise(name, storage.ReadOnly)
	assert.Nil(t, err, "reopen read only")
	assert.Equal(t, []byte("yes"), storage.Pool.TestData.Get([]byte("persist")))
}

func TestNewerDatabase(t *testing.T) {
	name, teardown := setup(t)
	defer teardown()
	storage.Finalise()

	db, err := leveldb.OpenFile(name+"-claims.leveldb", nil)
	assert.Nil(t, err)
	err = db.Put([]byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}, []byte{0x7f, 0, 0, 0}, nil)
	assert.Nil(t, err)
	db.Close()

	err = storage.Initialise(name, storage.ReadWrite)
	assert.Equal(t, fault.DatabaseIsNewer, err)
}
