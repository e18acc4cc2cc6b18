// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/claimd/fault"
)

// PrivateKey - signing half of an account
type PrivateKey struct {
	Account    *Account
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a random ed25519 key
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return PrivateKeyFromBytes(privateKey, test)
}

// PrivateKeyFromBytes - accept either a 32 byte seed or a 64 byte ed25519 private key
func PrivateKeyFromBytes(key []byte, test bool) (*PrivateKey, error) {
	var privateKey ed25519.PrivateKey
	switch len(key) {
	case ed25519.SeedSize:
		privateKey = ed25519.NewKeyFromSeed(key)
	case ed25519.PrivateKeySize:
		privateKey = ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
		if string(privateKey) != string(key) {
			return nil, fault.InvalidKeyLength
		}
	default:
		return nil, fault.InvalidKeyLength
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey[ed25519.SeedSize:])

	return &PrivateKey{
		Account: &Account{
			AccountInterface: &ED25519Account{
				Test:      test,
				PublicKey: publicKey,
			},
		},
		PrivateKey: privateKey,
	}, nil
}

// Sign - sign a message
func (key *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(key.PrivateKey, message)
}

// Bytes - the 64 byte private key
func (key *PrivateKey) Bytes() []byte {
	return key.PrivateKey
}
