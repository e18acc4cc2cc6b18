// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"encoding/hex"

	"github.com/bitmark-inc/claimd/util"
)

// Operation - code of a signed request
type Operation uint64

// operation codes, part of the signed message so a signature for
// one operation cannot be replayed as another
const (
	OpCreate        Operation = 1
	OpLock          Operation = 2
	OpUpdate        Operation = 3
	OpRevoke        Operation = 4
	OpCreateAddress Operation = 5
)

// String - RPC method name of an operation
func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "Claims.Create"
	case OpLock:
		return "Claims.Lock"
	case OpUpdate:
		return "Claims.Update"
	case OpRevoke:
		return "Claims.Revoke"
	case OpCreateAddress:
		return "Claims.CreateAddress"
	default:
		return "*unknown*"
	}
}

// Message - the bytes an owner signs for a request
//
// varint(op) ++ packed(instance) ++ varint(nonce) ++ packed(item) ++ packed(secret)
//
// nonce is the owner's current value from Claims.Nonce, each one is
// accepted once so a signed request cannot be sent again
func Message(op Operation, instance string, nonce uint64, item []byte, secret []byte) []byte {
	message := util.ToVarint64(uint64(op))
	message = append(message, util.PackBytes([]byte(instance))...)
	message = append(message, util.ToVarint64(nonce)...)
	message = append(message, util.PackBytes(item)...)
	return append(message, util.PackBytes(secret)...)
}

// HexBytes - binary data as a hex string in JSON
type HexBytes []byte

// String - hex text
func (b HexBytes) String() string {
	return hex.EncodeToString(b)
}

// MarshalText - convert to hex text
func (b HexBytes) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(b))
	buffer := make([]byte, size)
	hex.Encode(buffer, b)
	return buffer, nil
}

// UnmarshalText - convert from hex text
func (b *HexBytes) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*b = buffer[:n]
	return nil
}
