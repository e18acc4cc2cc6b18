// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimd/claim"
	"github.com/bitmark-inc/claimd/counter"
	"github.com/bitmark-inc/claimd/mode"
	"github.com/bitmark-inc/claimd/rpc/claims"
	"github.com/bitmark-inc/claimd/rpc/metrics"
	"github.com/bitmark-inc/claimd/rpc/node"
)

// Create - an RPC server with the Claims and Node services
//
// also returns the node service for the HTTPS details page
func Create(log *logger.L, version string, rpcCount *counter.Counter, recorder metrics.Recorder, readOnly bool) (*rpc.Server, *node.Node) {

	start := time.Now().UTC()

	n := node.New(log, start, version, mode.ChainName, mode.String, registries, rpcCount)

	server := rpc.NewServer()

	_ = server.Register(claims.New(log, lookup, mode.Is, mode.IsTesting, recorder, readOnly))
	_ = server.Register(n)

	return server, n
}

func lookup(instance string) (claims.Registry, error) {
	r, err := claim.Get(instance)
	if nil != err {
		return nil, err
	}
	return r, nil
}

func registries() []node.Registry {
	names := claim.Names()
	result := make([]node.Registry, 0, len(names))
	for _, name := range names {
		r, err := claim.Get(name)
		if nil != err {
			continue
		}
		result = append(result, r)
	}
	return result
}
