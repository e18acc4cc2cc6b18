// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - send registry events to ZeroMQ subscribers
//
// every message on messagebus.Bus.Broadcast is written to curve
// encrypted PUB sockets as a multipart message:
//
//   command ++ instance ++ account ++ payload
//
// subscribers may filter on the command frame
package publish
