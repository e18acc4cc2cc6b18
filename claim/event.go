// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

// names of the messages sent after each successful request
//
// parameters are always: instance name, account bytes, payload
const (
	ClaimCreated      = "ClaimCreated"      // payload: proof
	ClaimRevoked      = "ClaimRevoked"      // payload: proof
	UpdateCreated     = "UpdateCreated"     // payload: proof
	ClaimLocked       = "ClaimLocked"       // payload: proof
	PshAddressCreated = "PshAddressCreated" // payload: address
)

// Events - all event names
var Events = []string{
	ClaimCreated,
	ClaimRevoked,
	UpdateCreated,
	ClaimLocked,
	PshAddressCreated,
}

// Broadcaster - destination for events
type Broadcaster interface {
	Send(string, ...[]byte)
}

// Receipt - result of a successful request
type Receipt struct {
	Instance string `json:"instance"`
	Event    string `json:"event"`
	Height   uint64 `json:"height"`
}
