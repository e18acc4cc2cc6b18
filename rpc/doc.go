// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client access to the claim registries
//
// JSON-RPC over TLS serves the Claims and Node services. The optional
// HTTPS listener carries the same RPC on /claimd/rpc, node details on
// /claimd/details and prometheus metrics on /metrics, the last two
// restricted by per-path CIDR allow lists.
package rpc
