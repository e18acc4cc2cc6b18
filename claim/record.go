// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"encoding/binary"

	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/util"
)

// maximum length of a proof or address
const MaxKeyLength = 1024

// ClaimRecord - current owner of a proof
type ClaimRecord struct {
	Owner     *account.Account `json:"owner"`
	CreatedAt uint64           `json:"createdAt"`
}

// LockRecord - the secret that authorises a takeover
type LockRecord struct {
	Holder *account.Account `json:"holder"`
	Secret []byte           `json:"secret"`
}

// AddressRecord - owner of a registered address
type AddressRecord struct {
	Owner     *account.Account `json:"owner"`
	CreatedAt uint64           `json:"createdAt"`
}

// createdAt ++ owner
func packOwned(createdAt uint64, owner []byte) []byte {
	buffer := make([]byte, 8, 8+len(owner))
	binary.BigEndian.PutUint64(buffer, createdAt)
	return append(buffer, owner...)
}

func uint64FromBytes(buffer []byte) uint64 {
	return binary.BigEndian.Uint64(buffer)
}

// varint(len holder) ++ holder ++ secret
func packLock(holder []byte, secret []byte) []byte {
	buffer := util.PackBytes(holder)
	return append(buffer, secret...)
}

// split a lock record into holder bytes and secret
func unpackLock(buffer []byte) ([]byte, []byte, error) {
	holder, n, ok := util.UnpackBytes(buffer)
	if !ok {
		return nil, nil, fault.TruncatedRecord
	}
	secret := make([]byte, len(buffer)-n)
	copy(secret, buffer[n:])
	return holder, secret, nil
}

func decodeLock(buffer []byte) (*LockRecord, error) {
	holder, secret, err := unpackLock(buffer)
	if nil != err {
		return nil, err
	}
	a, err := account.AccountFromBytes(holder)
	if nil != err {
		return nil, err
	}
	return &LockRecord{
		Holder: a,
		Secret: secret,
	}, nil
}

// validate a proof or address
func checkKey(key []byte, missing error) error {
	if 0 == len(key) {
		return missing
	}
	if len(key) > MaxKeyLength {
		return fault.ProofTooLong
	}
	return nil
}
