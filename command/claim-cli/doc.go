// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// claim-cli - command line client for claimd
//
// identities are kept in a JSON file with each private key encrypted
// under a password; every write request is signed locally and sent
// over JSON-RPC/TLS
//
//   claim-cli --identity=alice create --proof=646f632d31
package main
