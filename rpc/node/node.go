// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimd/counter"
	"github.com/bitmark-inc/claimd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Registry - what the node reports about a registry
type Registry interface {
	Name() string
	Extensions() []string
	Height() uint64
}

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *ratelimit.Limiter
	Start      time.Time
	Version    string
	Chain      func() string
	Mode       func() string
	Registries func() []Registry
	counter    *counter.Counter
}

// New - the Node RPC service
func New(log *logger.L,
	start time.Time,
	version string,
	chain func() string,
	mode func() string,
	registries func() []Registry,
	counter *counter.Counter,
) *Node {
	return &Node{
		Log:        log,
		Limiter:    ratelimit.New(rateLimitNode, rateBurstNode, 1),
		Start:      start,
		Version:    version,
		Chain:      chain,
		Mode:       mode,
		Registries: registries,
		counter:    counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// RegistryInfo - state of one registry instance
type RegistryInfo struct {
	Name       string   `json:"name"`
	Height     uint64   `json:"height"`
	Extensions []string `json:"extensions"`
}

// InfoReply - results from info request
type InfoReply struct {
	Chain      string         `json:"chain"`
	Mode       string         `json:"mode"`
	Version    string         `json:"version"`
	Uptime     string         `json:"uptime"`
	Clients    uint64         `json:"clients"`
	Registries []RegistryInfo `json:"registries"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := node.Limiter.Limit(); nil != err {
		return err
	}

	node.Fill(reply)
	return nil
}

// Fill - collect the node information without rate limiting
func (node *Node) Fill(reply *InfoReply) {
	reply.Chain = node.Chain()
	reply.Mode = node.Mode()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Clients = node.counter.Uint64()

	registries := node.Registries()
	reply.Registries = make([]RegistryInfo, len(registries))
	for i, r := range registries {
		reply.Registries[i] = RegistryInfo{
			Name:       r.Name(),
			Height:     r.Height(),
			Extensions: r.Extensions(),
		}
	}
}
