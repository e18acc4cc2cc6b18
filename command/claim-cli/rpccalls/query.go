// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/claimd/rpc/claims"
)

// Get - current owner of a proof
func (c *Client) Get(instance string, proof []byte) (*claims.GetReply, error) {
	arguments := claims.GetArguments{
		Instance: instance,
		Proof:    proof,
	}

	var reply claims.GetReply
	if err := c.call("Claims.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetAddress - current owner of an address
func (c *Client) GetAddress(instance string, address []byte) (*claims.GetAddressReply, error) {
	arguments := claims.GetAddressArguments{
		Instance: instance,
		Address:  address,
	}

	var reply claims.GetAddressReply
	if err := c.call("Claims.GetAddress", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - one page of claims starting at a proof
func (c *Client) List(instance string, start []byte, count int) (*claims.ListReply, error) {
	arguments := claims.ListArguments{
		Instance: instance,
		Start:    start,
		Count:    count,
	}

	var reply claims.ListReply
	if err := c.call("Claims.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
