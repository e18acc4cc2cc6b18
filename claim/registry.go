// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"bytes"
	"crypto/subtle"
	"regexp"
	"sync"

	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/storage"
	"github.com/bitmark-inc/logger"
)

// all registries share one storage transaction
var applyLock sync.RWMutex

var validName = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)

// Policy - behaviour switches; the zero value keeps locks after revoke,
// keeps the secret valid after a takeover and treats a missing lock as
// an empty secret
type Policy struct {
	CascadeRevoke   bool `json:"cascadeRevoke"`
	SingleUseSecret bool `json:"singleUseSecret"`
	RequireLock     bool `json:"requireLock"`
}

// Handles - the pools a registry uses
type Handles struct {
	Claims    storage.Handle
	Locks     storage.Handle
	Addresses storage.Handle
	Heights   storage.Handle
	Nonces    storage.Handle
}

// TransactionSource - start a storage transaction
type TransactionSource func() (storage.Transaction, error)

// Registry - one named claim registry
type Registry struct {
	log        *logger.L
	name       string
	namespace  []byte
	extensions []string
	policy     Policy
	pools      Handles
	begin      TransactionSource
	bus        Broadcaster
}

// a state change inside a transaction, returns the event payload
type action func(trx storage.Transaction, key []byte, who []byte, height uint64) ([]byte, error)

// New - create a registry
func New(name string, extensions []string, policy Policy, pools Handles, begin TransactionSource, bus Broadcaster) (*Registry, error) {
	if !validName.MatchString(name) {
		return nil, fault.InvalidRegistryName
	}
	if nil == pools.Claims || nil == pools.Locks || nil == pools.Addresses || nil == pools.Heights || nil == pools.Nonces || nil == begin || nil == bus {
		return nil, fault.MissingParameters
	}

	ext := make([]string, len(extensions))
	copy(ext, extensions)

	r := &Registry{
		log:        logger.New(name),
		name:       name,
		namespace:  append([]byte(name), 0x00),
		extensions: ext,
		policy:     policy,
		pools:      pools,
		begin:      begin,
		bus:        bus,
	}
	r.log.Infof("extensions: %v  policy: %+v", ext, policy)
	return r, nil
}

// every request carries the caller's current nonce for this registry,
// see Nonce; a request with any other value is rejected and a
// successful one advances it

// Create - claim an unclaimed proof
func (r *Registry) Create(caller *account.Account, nonce uint64, proof []byte) (*Receipt, error) {
	return r.apply(caller, nonce, proof, fault.MissingProof, ClaimCreated, r.create)
}

// Lock - attach a secret to a claim owned by the caller
//
// the event carries the proof, the secret never leaves the registry
func (r *Registry) Lock(caller *account.Account, nonce uint64, proof []byte, secret []byte) (*Receipt, error) {
	return r.apply(caller, nonce, proof, fault.MissingProof, ClaimLocked,
		func(trx storage.Transaction, key []byte, who []byte, _ uint64) ([]byte, error) {
			if trx.Has(r.pools.Locks, key) {
				return nil, fault.ProofAlreadyLocked
			}

			_, owner := trx.GetNB(r.pools.Claims, key)
			if nil == owner {
				return nil, fault.ProofNotClaimed
			}
			if !bytes.Equal(owner, who) {
				return nil, fault.NotProofOwner
			}

			trx.Put(r.pools.Locks, key, packLock(who, secret))
			return keyOf(key, r.namespace), nil
		})
}

// Update - claim an unclaimed proof, or take over a claimed one by
// presenting its secret
func (r *Registry) Update(caller *account.Account, nonce uint64, proof []byte, secret []byte) (*Receipt, error) {
	return r.apply(caller, nonce, proof, fault.MissingProof, UpdateCreated,
		func(trx storage.Transaction, key []byte, who []byte, height uint64) ([]byte, error) {

			createdAt, owner := trx.GetNB(r.pools.Claims, key)
			if nil == owner {
				return r.create(trx, key, who, height)
			}

			stored := []byte{}
			lockData := trx.Get(r.pools.Locks, key)
			if nil != lockData {
				var err error
				_, stored, err = unpackLock(lockData)
				if nil != err {
					return nil, err
				}
			} else if r.policy.RequireLock {
				return nil, fault.InvalidLock
			}

			if 1 != subtle.ConstantTimeCompare(secret, stored) {
				return nil, fault.InvalidLock
			}

			if bytes.Equal(owner, who) {
				return keyOf(key, r.namespace), nil
			}

			trx.Put(r.pools.Claims, key, packOwned(createdAt, who))
			if r.policy.SingleUseSecret {
				if nil != lockData {
					trx.Delete(r.pools.Locks, key)
				}
			} else {
				trx.Put(r.pools.Locks, key, packLock(who, stored))
			}
			return keyOf(key, r.namespace), nil
		})
}

// Revoke - delete a claim owned by the caller
func (r *Registry) Revoke(caller *account.Account, nonce uint64, proof []byte) (*Receipt, error) {
	return r.apply(caller, nonce, proof, fault.MissingProof, ClaimRevoked,
		func(trx storage.Transaction, key []byte, who []byte, _ uint64) ([]byte, error) {
			_, owner := trx.GetNB(r.pools.Claims, key)
			if nil == owner {
				return nil, fault.NoSuchProof
			}
			if !bytes.Equal(owner, who) {
				return nil, fault.NotProofOwner
			}

			trx.Delete(r.pools.Claims, key)
			if r.policy.CascadeRevoke {
				trx.Delete(r.pools.Locks, key)
			}
			return keyOf(key, r.namespace), nil
		})
}

// CreateAddress - register an unregistered address
func (r *Registry) CreateAddress(caller *account.Account, nonce uint64, address []byte) (*Receipt, error) {
	return r.apply(caller, nonce, address, fault.MissingAddress, PshAddressCreated,
		func(trx storage.Transaction, key []byte, who []byte, height uint64) ([]byte, error) {
			if trx.Has(r.pools.Addresses, key) {
				return nil, fault.AddressAlreadyClaimed
			}
			trx.Put(r.pools.Addresses, key, packOwned(height, who))
			return keyOf(key, r.namespace), nil
		})
}

func (r *Registry) create(trx storage.Transaction, key []byte, who []byte, height uint64) ([]byte, error) {
	if trx.Has(r.pools.Claims, key) {
		return nil, fault.ProofAlreadyClaimed
	}
	trx.Put(r.pools.Claims, key, packOwned(height, who))
	return keyOf(key, r.namespace), nil
}

// run one request: validate, then begin → nonce → check → write →
// commit, and only after a successful commit broadcast
func (r *Registry) apply(caller *account.Account, nonce uint64, item []byte, missing error, event string, f action) (*Receipt, error) {
	if nil == caller || nil == caller.AccountInterface {
		return nil, fault.MissingOwner
	}
	if err := checkKey(item, missing); nil != err {
		return nil, err
	}

	who := caller.Bytes()
	key := r.key(item)

	applyLock.Lock()
	defer applyLock.Unlock()

	trx, err := r.begin()
	if nil != err {
		r.log.Errorf("%s: begin transaction error: %s", event, err)
		return nil, err
	}

	nonceKey := r.key(who)
	expected, _ := trx.GetN(r.pools.Nonces, nonceKey)
	if nonce != expected {
		trx.Abort()
		r.log.Debugf("%s: %x nonce: %d expected: %d", event, item, nonce, expected)
		return nil, fault.InvalidNonce
	}

	height, _ := trx.GetN(r.pools.Heights, []byte(r.name))
	height += 1

	payload, err := f(trx, key, who, height)
	if nil != err {
		trx.Abort()
		r.log.Debugf("%s: %x rejected: %s", event, item, err)
		return nil, err
	}

	trx.PutN(r.pools.Heights, []byte(r.name), height)
	trx.PutN(r.pools.Nonces, nonceKey, nonce+1)

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("%s: commit error: %s", event, err)
		return nil, err
	}

	r.log.Infof("%s: %x by: %s at height: %d", event, item, caller, height)
	r.bus.Send(event, []byte(r.name), who, payload)

	return &Receipt{
		Instance: r.name,
		Event:    event,
		Height:   height,
	}, nil
}

// instance ++ 0x00 ++ item
func (r *Registry) key(item []byte) []byte {
	key := make([]byte, 0, len(r.namespace)+len(item))
	key = append(key, r.namespace...)
	return append(key, item...)
}

// strip the instance namespace from a key
func keyOf(key []byte, namespace []byte) []byte {
	return copyBytes(key[len(namespace):])
}

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
