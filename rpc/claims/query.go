// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/fault"
)

// GetArguments - arguments for Get
type GetArguments struct {
	Instance string   `json:"instance"`
	Proof    HexBytes `json:"proof"`
}

// GetReply - current owner of a proof
//
// the lock secret is never returned, only whether one exists
type GetReply struct {
	Owner     *account.Account `json:"owner"`
	CreatedAt uint64           `json:"createdAt"`
	Locked    bool             `json:"locked"`
}

// Get - look up a claim
func (c *Claims) Get(arguments *GetArguments, reply *GetReply) error {
	err := c.get(arguments, reply)
	c.Metrics.Request("Claims.Get", err)
	return err
}

func (c *Claims) get(arguments *GetArguments, reply *GetReply) error {
	if err := c.Limiter.Limit(); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	registry, err := c.Lookup(arguments.Instance)
	if nil != err {
		return err
	}

	record, err := registry.Get(arguments.Proof)
	if nil != err {
		return err
	}

	_, err = registry.GetLock(arguments.Proof)
	switch err {
	case nil:
		reply.Locked = true
	case fault.ProofNotLocked:
		reply.Locked = false
	default:
		return err
	}

	reply.Owner = record.Owner
	reply.CreatedAt = record.CreatedAt
	return nil
}

// NonceArguments - arguments for Nonce
type NonceArguments struct {
	Instance string           `json:"instance"`
	Owner    *account.Account `json:"owner"`
}

// NonceReply - the nonce to sign the owner's next request with
type NonceReply struct {
	Nonce uint64 `json:"nonce"`
}

// Nonce - current request nonce of an account
func (c *Claims) Nonce(arguments *NonceArguments, reply *NonceReply) error {
	err := c.nonce(arguments, reply)
	c.Metrics.Request("Claims.Nonce", err)
	return err
}

func (c *Claims) nonce(arguments *NonceArguments, reply *NonceReply) error {
	if err := c.Limiter.Limit(); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if nil == arguments.Owner || nil == arguments.Owner.AccountInterface {
		return fault.MissingOwner
	}

	registry, err := c.Lookup(arguments.Instance)
	if nil != err {
		return err
	}

	reply.Nonce = registry.Nonce(arguments.Owner)
	return nil
}

// GetAddressArguments - arguments for GetAddress
type GetAddressArguments struct {
	Instance string   `json:"instance"`
	Address  HexBytes `json:"address"`
}

// GetAddressReply - owner of an address
type GetAddressReply struct {
	Owner     *account.Account `json:"owner"`
	CreatedAt uint64           `json:"createdAt"`
}

// GetAddress - look up an address
func (c *Claims) GetAddress(arguments *GetAddressArguments, reply *GetAddressReply) error {
	err := c.getAddress(arguments, reply)
	c.Metrics.Request("Claims.GetAddress", err)
	return err
}

func (c *Claims) getAddress(arguments *GetAddressArguments, reply *GetAddressReply) error {
	if err := c.Limiter.Limit(); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	registry, err := c.Lookup(arguments.Instance)
	if nil != err {
		return err
	}

	record, err := registry.GetAddress(arguments.Address)
	if nil != err {
		return err
	}
	reply.Owner = record.Owner
	reply.CreatedAt = record.CreatedAt
	return nil
}

// ListArguments - arguments for List
type ListArguments struct {
	Instance string   `json:"instance"`
	Start    HexBytes `json:"start"`
	Count    int      `json:"count"`
}

// ListEntry - one claim
type ListEntry struct {
	Proof     HexBytes         `json:"proof"`
	Owner     *account.Account `json:"owner"`
	CreatedAt uint64           `json:"createdAt"`
}

// ListReply - a page of claims
type ListReply struct {
	Claims []ListEntry `json:"claims"`
	Next   HexBytes    `json:"next,omitempty"`
}

// List - claims in proof order
func (c *Claims) List(arguments *ListArguments, reply *ListReply) error {
	err := c.list(arguments, reply)
	c.Metrics.Request("Claims.List", err)
	return err
}

func (c *Claims) list(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := c.Limiter.LimitN(arguments.Count); nil != err {
		return err
	}

	registry, err := c.Lookup(arguments.Instance)
	if nil != err {
		return err
	}

	entries, next, err := registry.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Claims = make([]ListEntry, len(entries))
	for i, e := range entries {
		reply.Claims[i] = ListEntry{
			Proof:     e.Proof,
			Owner:     e.Owner,
			CreatedAt: e.CreatedAt,
		}
	}
	reply.Next = next
	return nil
}
