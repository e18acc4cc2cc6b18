// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package claim - the claim registry
//
// A registry lets an account claim an opaque proof, lock the claim
// behind a secret so that anyone presenting the secret may take it
// over, revoke it, and register create-only addresses.
//
// State of a single proof:
//
//   Unclaimed --Create / Update--> Claimed(owner)
//   Claimed(owner) --Lock(owner, secret)--> Claimed+Locked(owner, secret)
//   Claimed+Locked(owner, secret) --Update(other, secret)--> Claimed+Locked(other, secret)
//   Claimed --Revoke(owner)--> Unclaimed
//
// Every request runs inside one storage transaction under a single
// mutex shared by all registries and, on success, advances the
// registry height by one and sends exactly one message on
// messagebus.Bus.Broadcast.
//
// Each request carries the caller's nonce for the registry and is
// rejected unless it equals the stored value, which a successful request
// advances, so a signed request is accepted at most once.
package claim
