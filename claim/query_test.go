// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimd/claim"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/storage"
)

func TestList(t *testing.T) {
	r, _, teardown := setup(t, claim.Policy{})
	defer teardown()

	other, err := claim.New("other", nil, claim.Policy{}, pools(), storage.NewDBTransaction, &nullBroadcaster{})
	assert.Nil(t, err)
	_, err = other.Create(carol, other.Nonce(carol), []byte("a-0"))
	assert.Nil(t, err)

	// inserted out of order
	for _, p := range []string{"p-3", "p-1", "p-4", "p-2", "p-5"} {
		_, err := r.Create(alice, r.Nonce(alice), []byte(p))
		assert.Nil(t, err, "create: %s", p)
	}
	_, err = r.Update(bob, r.Nonce(bob), []byte("p-3"), nil)
	assert.Nil(t, err)

	entries, next, err := r.List(nil, 2)
	assert.Nil(t, err)
	if assert.Equal(t, 2, len(entries)) {
		assert.Equal(t, []byte("p-1"), entries[0].Proof)
		assert.Equal(t, []byte("p-2"), entries[1].Proof)
		assert.True(t, alice.Equal(entries[0].Owner))
		assert.Equal(t, uint64(2), entries[0].CreatedAt)
	}
	assert.Equal(t, []byte("p-3"), next)

	entries, next, err = r.List(next, 2)
	assert.Nil(t, err)
	if assert.Equal(t, 2, len(entries)) {
		assert.Equal(t, []byte("p-3"), entries[0].Proof)
		assert.True(t, bob.Equal(entries[0].Owner), "transferred")
		assert.Equal(t, uint64(1), entries[0].CreatedAt)
	}
	assert.Equal(t, []byte("p-5"), next)

	entries, next, err = r.List(next, 2)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(entries))
	assert.Nil(t, next, "end of list")

	_, _, err = r.List(nil, 0)
	assert.Equal(t, fault.InvalidCount, err)
	_, _, err = r.List(nil, claim.MaximumListCount+1)
	assert.Equal(t, fault.InvalidCount, err)
}

func TestQueryValidation(t *testing.T) {
	r, _, teardown := setup(t, claim.Policy{})
	defer teardown()

	_, err := r.Get(nil)
	assert.Equal(t, fault.MissingProof, err)
	_, err = r.GetLock(nil)
	assert.Equal(t, fault.MissingProof, err)
	_, err = r.GetAddress(nil)
	assert.Equal(t, fault.MissingAddress, err)
	_, err = r.GetLock([]byte("none"))
	assert.Equal(t, fault.ProofNotLocked, err)
}

type nullBroadcaster struct{}

func (nullBroadcaster) Send(string, ...[]byte) {}
