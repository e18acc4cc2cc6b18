// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimd/claim"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/messagebus"
	"github.com/bitmark-inc/claimd/storage"
	"github.com/bitmark-inc/claimd/storage/mocks"
)

func mockHandles(ctl *gomock.Controller) claim.Handles {
	return claim.Handles{
		Claims:    mocks.NewMockHandle(ctl),
		Locks:     mocks.NewMockHandle(ctl),
		Addresses: mocks.NewMockHandle(ctl),
		Heights:   mocks.NewMockHandle(ctl),
		Nonces:    mocks.NewMockHandle(ctl),
	}
}

func TestBeginFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	queue := &messagebus.BroadcastQueue{}
	events := queue.Chan(5)
	defer queue.Release()

	begin := func() (storage.Transaction, error) {
		return nil, fault.TransactionInUse
	}

	r, err := claim.New(instance, nil, claim.Policy{}, mockHandles(ctl), begin, queue)
	assert.Nil(t, err)

	_, err = r.Create(alice, 0, proof)
	assert.Equal(t, fault.TransactionInUse, err)
	expectNoEvent(t, events)
}

func TestCommitFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	queue := &messagebus.BroadcastQueue{}
	events := queue.Chan(5)
	defer queue.Release()

	handles := mockHandles(ctl)
	trx := mocks.NewMockTransaction(ctl)
	begin := func() (storage.Transaction, error) {
		return trx, nil
	}

	commitError := fault.ProcessError("disk full")

	key := append([]byte(instance+"\x00"), proof...)
	nonceKey := append([]byte(instance+"\x00"), alice.Bytes()...)
	gomock.InOrder(
		trx.EXPECT().GetN(handles.Nonces, nonceKey).Return(uint64(5), true),
		trx.EXPECT().GetN(handles.Heights, []byte(instance)).Return(uint64(41), true),
		trx.EXPECT().Has(handles.Claims, key).Return(false),
		trx.EXPECT().Put(handles.Claims, key, gomock.Any()),
		trx.EXPECT().PutN(handles.Heights, []byte(instance), uint64(42)),
		trx.EXPECT().PutN(handles.Nonces, nonceKey, uint64(6)),
		trx.EXPECT().Commit().Return(commitError),
	)

	r, err := claim.New(instance, nil, claim.Policy{}, handles, begin, queue)
	assert.Nil(t, err)

	_, err = r.Create(alice, 5, proof)
	assert.Equal(t, commitError, err)
	expectNoEvent(t, events)
}

func TestRejectedRequestAborts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	handles := mockHandles(ctl)
	trx := mocks.NewMockTransaction(ctl)
	begin := func() (storage.Transaction, error) {
		return trx, nil
	}

	key := append([]byte(instance+"\x00"), proof...)
	nonceKey := append([]byte(instance+"\x00"), alice.Bytes()...)
	gomock.InOrder(
		trx.EXPECT().GetN(handles.Nonces, nonceKey).Return(uint64(0), false),
		trx.EXPECT().GetN(handles.Heights, []byte(instance)).Return(uint64(7), true),
		trx.EXPECT().Has(handles.Locks, key).Return(true),
		trx.EXPECT().Abort(),
	)

	r, err := claim.New(instance, nil, claim.Policy{}, handles, begin, &nullBroadcaster{})
	assert.Nil(t, err)

	_, err = r.Lock(alice, 0, proof, []byte("xyz"))
	assert.Equal(t, fault.ProofAlreadyLocked, err)
}

func TestStaleNonceAborts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	handles := mockHandles(ctl)
	trx := mocks.NewMockTransaction(ctl)
	begin := func() (storage.Transaction, error) {
		return trx, nil
	}

	nonceKey := append([]byte(instance+"\x00"), bob.Bytes()...)
	gomock.InOrder(
		trx.EXPECT().GetN(handles.Nonces, nonceKey).Return(uint64(3), true),
		trx.EXPECT().Abort(),
	)

	r, err := claim.New(instance, nil, claim.Policy{}, handles, begin, &nullBroadcaster{})
	assert.Nil(t, err)

	_, err = r.Revoke(bob, 2, proof)
	assert.Equal(t, fault.InvalidNonce, err)
}
