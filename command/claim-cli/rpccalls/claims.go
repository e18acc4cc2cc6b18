// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/claim"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/rpc/claims"
)

// ClaimData - a signed request on one proof
type ClaimData struct {
	Key      *account.PrivateKey
	Instance string
	Proof    []byte
	Secret   []byte
}

// Claim - sign and send Create, Lock, Update or Revoke
func (c *Client) Claim(op claims.Operation, data *ClaimData) (*claim.Receipt, error) {
	if nil == data.Key {
		return nil, fault.NotPrivateKey
	}
	if data.Key.Account.IsTesting() != c.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}

	switch op {
	case claims.OpCreate, claims.OpRevoke:
		data.Secret = nil
	case claims.OpLock, claims.OpUpdate:
	default:
		return nil, fault.MissingParameters
	}

	nonce, err := c.Nonce(data.Instance, data.Key.Account)
	if nil != err {
		return nil, err
	}

	arguments := claims.ClaimArguments{
		Instance:  data.Instance,
		Owner:     data.Key.Account,
		Nonce:     nonce,
		Proof:     data.Proof,
		Secret:    data.Secret,
		Signature: data.Key.Sign(claims.Message(op, data.Instance, nonce, data.Proof, data.Secret)),
	}

	var reply claim.Receipt
	if err := c.call(op.String(), &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CreateAddress - sign and send an address claim
func (c *Client) CreateAddress(key *account.PrivateKey, instance string, address []byte) (*claim.Receipt, error) {
	if nil == key {
		return nil, fault.NotPrivateKey
	}
	if key.Account.IsTesting() != c.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}

	nonce, err := c.Nonce(instance, key.Account)
	if nil != err {
		return nil, err
	}

	arguments := claims.AddressArguments{
		Instance:  instance,
		Owner:     key.Account,
		Nonce:     nonce,
		Address:   address,
		Signature: key.Sign(claims.Message(claims.OpCreateAddress, instance, nonce, address, nil)),
	}

	var reply claim.Receipt
	if err := c.call(claims.OpCreateAddress.String(), &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Nonce - the value to sign the next request from an account with
func (c *Client) Nonce(instance string, owner *account.Account) (uint64, error) {
	arguments := claims.NonceArguments{
		Instance: instance,
		Owner:    owner,
	}

	var reply claims.NonceReply
	if err := c.call("Claims.Nonce", &arguments, &reply); nil != err {
		return 0, err
	}
	return reply.Nonce, nil
}
