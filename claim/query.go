// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/fault"
)

// maximum entries returned by List
const MaximumListCount = 100

// ClaimEntry - a proof and its claim
type ClaimEntry struct {
	Proof []byte `json:"proof"`
	ClaimRecord
}

// Name - registry instance name
func (r *Registry) Name() string {
	return r.name
}

// Extensions - host extensions configured for this registry
func (r *Registry) Extensions() []string {
	ext := make([]string, len(r.extensions))
	copy(ext, r.extensions)
	return ext
}

// Policy - the behaviour switches in effect
func (r *Registry) Policy() Policy {
	return r.policy
}

// Height - height of the last successful request
func (r *Registry) Height() uint64 {
	applyLock.RLock()
	defer applyLock.RUnlock()

	height, _ := r.pools.Heights.GetN([]byte(r.name))
	return height
}

// Nonce - the value the next request from an account must carry
func (r *Registry) Nonce(caller *account.Account) uint64 {
	if nil == caller || nil == caller.AccountInterface {
		return 0
	}

	applyLock.RLock()
	defer applyLock.RUnlock()

	nonce, _ := r.pools.Nonces.GetN(r.key(caller.Bytes()))
	return nonce
}

// Get - current claim on a proof
func (r *Registry) Get(proof []byte) (*ClaimRecord, error) {
	if err := checkKey(proof, fault.MissingProof); nil != err {
		return nil, err
	}

	applyLock.RLock()
	createdAt, owner := r.pools.Claims.GetNB(r.key(proof))
	applyLock.RUnlock()

	if nil == owner {
		return nil, fault.NoSuchProof
	}
	a, err := account.AccountFromBytes(owner)
	if nil != err {
		return nil, err
	}
	return &ClaimRecord{
		Owner:     a,
		CreatedAt: createdAt,
	}, nil
}

// GetLock - lock record of a proof, which may exist without a claim
func (r *Registry) GetLock(proof []byte) (*LockRecord, error) {
	if err := checkKey(proof, fault.MissingProof); nil != err {
		return nil, err
	}

	applyLock.RLock()
	buffer := r.pools.Locks.Get(r.key(proof))
	applyLock.RUnlock()

	if nil == buffer {
		return nil, fault.ProofNotLocked
	}
	return decodeLock(buffer)
}

// GetAddress - owner of a registered address
func (r *Registry) GetAddress(address []byte) (*AddressRecord, error) {
	if err := checkKey(address, fault.MissingAddress); nil != err {
		return nil, err
	}

	applyLock.RLock()
	createdAt, owner := r.pools.Addresses.GetNB(r.key(address))
	applyLock.RUnlock()

	if nil == owner {
		return nil, fault.NoSuchAddress
	}
	a, err := account.AccountFromBytes(owner)
	if nil != err {
		return nil, err
	}
	return &AddressRecord{
		Owner:     a,
		CreatedAt: createdAt,
	}, nil
}

// List - claims in proof order starting at start (inclusive)
//
// also returns the proof to start the next page from, nil at the end
func (r *Registry) List(start []byte, count int) ([]ClaimEntry, []byte, error) {
	if count <= 0 || count > MaximumListCount {
		return nil, nil, fault.InvalidCount
	}

	applyLock.RLock()
	defer applyLock.RUnlock()

	cursor := r.pools.Claims.NewFetchCursor().Within(r.namespace)
	if 0 != len(start) {
		cursor.Seek(r.key(start))
	}

	// one extra to find the next start
	elements, err := cursor.Fetch(count + 1)
	if nil != err {
		return nil, nil, err
	}

	var next []byte
	if len(elements) > count {
		next = keyOf(elements[count].Key, r.namespace)
		elements = elements[:count]
	}

	entries := make([]ClaimEntry, 0, len(elements))
	for _, e := range elements {
		if len(e.Value) < 9 {
			return nil, nil, fault.TruncatedRecord
		}
		a, err := account.AccountFromBytes(e.Value[8:])
		if nil != err {
			return nil, nil, err
		}
		entries = append(entries, ClaimEntry{
			Proof: keyOf(e.Key, r.namespace),
			ClaimRecord: ClaimRecord{
				Owner:     a,
				CreatedAt: uint64FromBytes(e.Value[:8]),
			},
		})
	}
	return entries, next, nil
}
