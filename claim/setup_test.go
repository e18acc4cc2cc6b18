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
)

func TestInitialise(t *testing.T) {
	queue, teardown := setupStorage(t)
	defer teardown()

	_, err := claim.Get("")
	assert.Equal(t, fault.NotInitialised, err)

	err = claim.Initialise(nil, queue)
	assert.Equal(t, fault.NoRegistries, err)

	err = claim.Initialise([]claim.Configuration{{Name: "tight"}, {Name: "tight"}}, queue)
	assert.Equal(t, fault.DuplicateRegistry, err)

	err = claim.Initialise([]claim.Configuration{{Name: "Bad Name"}}, queue)
	assert.Equal(t, fault.InvalidRegistryName, err)

	configurations := []claim.Configuration{
		{
			Name:       "tight",
			Extensions: []string{"balances", "nft"},
		},
		{
			Name:          "crowd",
			Extensions:    []string{"balances"},
			CascadeRevoke: true,
		},
		{
			Name:            "docverify",
			Extensions:      []string{"identity"},
			SingleUseSecret: true,
			RequireLock:     true,
		},
	}
	err = claim.Initialise(configurations, queue)
	assert.Nil(t, err)
	defer claim.Finalise()

	err = claim.Initialise(configurations, queue)
	assert.Equal(t, fault.AlreadyInitialised, err)

	assert.Equal(t, []string{"tight", "crowd", "docverify"}, claim.Names())

	r, err := claim.Get("")
	assert.Nil(t, err)
	assert.Equal(t, "tight", r.Name(), "empty name is the first registry")

	r, err = claim.Get("docverify")
	assert.Nil(t, err)
	assert.Equal(t, claim.Policy{SingleUseSecret: true, RequireLock: true}, r.Policy())
	assert.Equal(t, []string{"identity"}, r.Extensions())

	r, err = claim.Get("crowd")
	assert.Nil(t, err)
	assert.True(t, r.Policy().CascadeRevoke)

	_, err = claim.Get("missing")
	assert.Equal(t, fault.NoSuchRegistry, err)
}

func TestFinalise(t *testing.T) {
	queue, teardown := setupStorage(t)
	defer teardown()

	assert.Equal(t, fault.NotInitialised, claim.Finalise())

	err := claim.Initialise([]claim.Configuration{{Name: "tight"}}, queue)
	assert.Nil(t, err)
	assert.Nil(t, claim.Finalise())

	_, err = claim.Get("tight")
	assert.Equal(t, fault.NotInitialised, err)
	assert.Equal(t, 0, len(claim.Names()))
}
