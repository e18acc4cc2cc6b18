// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/claimd/fault"
)

// Transaction - atomic group of writes across pools
//
// reads through a transaction see its own uncommitted writes
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	GetNB(Handle, []byte) (uint64, []byte)
	Has(Handle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

// TransactionData - the Transaction implementation
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - open the transaction
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// InUse - true between Begin and Commit/Abort
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Put - buffer a write
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	t.mustBeOpen("Put")
	h.Put(key, value)
}

// PutN - buffer a uint64 write
func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	t.mustBeOpen("PutN")
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	h.Put(key, buffer)
}

// Delete - buffer a delete
func (t *TransactionData) Delete(h Handle, key []byte) {
	t.mustBeOpen("Delete")
	h.Remove(key)
}

// Get - read including pending writes
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

// GetN - read including pending writes
func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

// GetNB - read including pending writes
func (t *TransactionData) GetNB(h Handle, key []byte) (uint64, []byte) {
	return h.GetNB(key)
}

// Has - existence including pending writes
func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

// Commit - write all pending operations atomically
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard all pending operations
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// a write outside Begin/Commit would bypass the batch
func (t *TransactionData) mustBeOpen(operation string) {
	if !t.access.InUse() {
		fault.PanicWithError("transaction."+operation, fault.TransactionNotStarted)
	}
}
