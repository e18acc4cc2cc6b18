// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/claim"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/mode"
	"github.com/bitmark-inc/claimd/rpc/metrics"
	"github.com/bitmark-inc/claimd/rpc/ratelimit"
)

const (
	rateLimitClaims = 200
	rateBurstClaims = 100
)

//go:generate mockgen -destination=../mocks/registry.go -package=mocks github.com/bitmark-inc/claimd/rpc/claims Registry

// Registry - the registry operations reachable over RPC
type Registry interface {
	Name() string
	Nonce(*account.Account) uint64
	Create(*account.Account, uint64, []byte) (*claim.Receipt, error)
	Lock(*account.Account, uint64, []byte, []byte) (*claim.Receipt, error)
	Update(*account.Account, uint64, []byte, []byte) (*claim.Receipt, error)
	Revoke(*account.Account, uint64, []byte) (*claim.Receipt, error)
	CreateAddress(*account.Account, uint64, []byte) (*claim.Receipt, error)
	Get([]byte) (*claim.ClaimRecord, error)
	GetLock([]byte) (*claim.LockRecord, error)
	GetAddress([]byte) (*claim.AddressRecord, error)
	List([]byte, int) ([]claim.ClaimEntry, []byte, error)
}

// Lookup - find a registry by instance name, empty for the default
type Lookup func(instance string) (Registry, error)

// Claims - type for the RPC
type Claims struct {
	Log            *logger.L
	Limiter        *ratelimit.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Lookup         Lookup
	Metrics        metrics.Recorder
	ReadOnly       bool
}

// New - the Claims RPC service
func New(log *logger.L,
	lookup Lookup,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	recorder metrics.Recorder,
	readOnly bool,
) *Claims {
	return &Claims{
		Log:            log,
		Limiter:        ratelimit.New(rateLimitClaims, rateBurstClaims, claim.MaximumListCount),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Lookup:         lookup,
		Metrics:        recorder,
		ReadOnly:       readOnly,
	}
}

// ClaimArguments - arguments for Create, Lock, Update and Revoke
//
// Secret is only used by Lock and Update
type ClaimArguments struct {
	Instance  string            `json:"instance"`
	Owner     *account.Account  `json:"owner"`
	Nonce     uint64            `json:"nonce"`
	Proof     HexBytes          `json:"proof"`
	Secret    HexBytes          `json:"secret,omitempty"`
	Signature account.Signature `json:"signature"`
}

// AddressArguments - arguments for CreateAddress
type AddressArguments struct {
	Instance  string            `json:"instance"`
	Owner     *account.Account  `json:"owner"`
	Nonce     uint64            `json:"nonce"`
	Address   HexBytes          `json:"address"`
	Signature account.Signature `json:"signature"`
}

// Create - claim an unclaimed proof
func (c *Claims) Create(arguments *ClaimArguments, reply *claim.Receipt) error {
	return c.apply(OpCreate, arguments, reply, func(r Registry) (*claim.Receipt, error) {
		return r.Create(arguments.Owner, arguments.Nonce, arguments.Proof)
	})
}

// Lock - attach a secret to an owned proof
func (c *Claims) Lock(arguments *ClaimArguments, reply *claim.Receipt) error {
	return c.apply(OpLock, arguments, reply, func(r Registry) (*claim.Receipt, error) {
		return r.Lock(arguments.Owner, arguments.Nonce, arguments.Proof, arguments.Secret)
	})
}

// Update - take over a proof by presenting its secret, or create it
func (c *Claims) Update(arguments *ClaimArguments, reply *claim.Receipt) error {
	return c.apply(OpUpdate, arguments, reply, func(r Registry) (*claim.Receipt, error) {
		return r.Update(arguments.Owner, arguments.Nonce, arguments.Proof, arguments.Secret)
	})
}

// Revoke - release an owned proof
func (c *Claims) Revoke(arguments *ClaimArguments, reply *claim.Receipt) error {
	return c.apply(OpRevoke, arguments, reply, func(r Registry) (*claim.Receipt, error) {
		return r.Revoke(arguments.Owner, arguments.Nonce, arguments.Proof)
	})
}

// CreateAddress - register an address
func (c *Claims) CreateAddress(arguments *AddressArguments, reply *claim.Receipt) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	wrapped := ClaimArguments{
		Instance:  arguments.Instance,
		Owner:     arguments.Owner,
		Nonce:     arguments.Nonce,
		Proof:     arguments.Address,
		Signature: arguments.Signature,
	}
	return c.apply(OpCreateAddress, &wrapped, reply, func(r Registry) (*claim.Receipt, error) {
		return r.CreateAddress(arguments.Owner, arguments.Nonce, arguments.Address)
	})
}

func (c *Claims) apply(op Operation, arguments *ClaimArguments, reply *claim.Receipt, f func(Registry) (*claim.Receipt, error)) error {
	err := c.write(op, arguments, reply, f)
	c.Metrics.Request(op.String(), err)
	return err
}

func (c *Claims) write(op Operation, arguments *ClaimArguments, reply *claim.Receipt, f func(Registry) (*claim.Receipt, error)) error {
	if err := c.Limiter.Limit(); nil != err {
		return err
	}
	if c.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	if nil == arguments {
		return fault.MissingParameters
	}
	if nil == arguments.Owner || nil == arguments.Owner.AccountInterface {
		return fault.MissingOwner
	}

	if !c.IsNormalMode(mode.Normal) {
		if c.IsNormalMode(mode.Stopped) {
			return fault.NotAvailableWhileStopping
		}
		return fault.NotAvailableDuringStartup
	}

	if arguments.Owner.IsTesting() != c.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	message := Message(op, arguments.Instance, arguments.Nonce, arguments.Proof, arguments.Secret)
	if err := arguments.Owner.CheckSignature(message, arguments.Signature); nil != err {
		c.Log.Warnf("%s: owner: %s  error: %s", op, arguments.Owner, err)
		return err
	}

	registry, err := c.Lookup(arguments.Instance)
	if nil != err {
		return err
	}

	receipt, err := f(registry)
	if nil != err {
		c.Log.Debugf("%s: %s  owner: %s  error: %s", op, registry.Name(), arguments.Owner, err)
		return err
	}

	c.Log.Infof("%s: %s  owner: %s  height: %d", op, receipt.Instance, arguments.Owner, receipt.Height)
	c.Metrics.Height(receipt.Instance, receipt.Height)

	*reply = *receipt
	return nil
}
