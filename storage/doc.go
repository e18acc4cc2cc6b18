// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. height    = big endian uint64 (8 bytes)
// 4. instance  = registry name (UTF-8, no 0x00 bytes)
// 5. owner     = packed account bytes (key variant ++ public key)
// 6. proof     = opaque bytes (1..1024)
// 7. holder    = packed account bytes of the lock holder
//
// Claims:
//
//   C ++ instance ++ 0x00 ++ proof     - live claim
//                                        data: created height ++ owner
//
// Locks:
//
//   K ++ instance ++ 0x00 ++ proof     - lock on a claim (may outlive the claim)
//                                        data: varint(len holder) ++ holder ++ secret
//
// Addresses:
//
//   P ++ instance ++ 0x00 ++ address   - create-only address registry
//                                        data: created height ++ owner
//
// Heights:
//
//   H ++ instance                      - current height of a registry
//                                        data: height
//
// Nonces:
//
//   N ++ instance ++ 0x00 ++ account   - next request nonce of an account
//                                        data: nonce
//
// Testing:
//
//   Z ++ key                           - testing data
package storage
