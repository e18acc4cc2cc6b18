// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimd/counter"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/rpc/certificate"
	"github.com/bitmark-inc/claimd/rpc/fixtures"
	"github.com/bitmark-inc/claimd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func tlsConfiguration(t *testing.T) (*tls.Config, [32]byte) {
	cert, key, err := fixtures.CertificatePair()
	assert.Nil(t, err, "certificate pair")

	tlsConfig, fin, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cert, key)
	assert.Nil(t, err, "certificate")
	return tlsConfig, fin
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	assert.Nil(t, err, "register")

	tlsConfig, fin := tlsConfiguration(t)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsConfig, fin)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestNewRPCInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	testCases := []struct {
		name string
		con  listeners.RPCConfiguration
		err  error
	}{
		{
			name: "maximum connections too small",
			con:  listeners.RPCConfiguration{MaximumConnections: 0, Bandwidth: 10000000, Listen: []string{"127.0.0.1:2130"}},
			err:  fault.MissingParameters,
		},
		{
			name: "bandwidth too small",
			con:  listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 100, Listen: []string{"127.0.0.1:2130"}},
			err:  fault.MissingParameters,
		},
		{
			name: "empty listen",
			con:  listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{}},
			err:  fault.MissingParameters,
		},
		{
			name: "invalid address",
			con:  listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{"localhost:2130"}},
			err:  fault.InvalidIpAddress,
		},
		{
			name: "missing port",
			con:  listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{"127.0.0.1"}},
			err:  fault.InvalidIpAddress,
		},
	}

	for _, tc := range testCases {
		count := counter.Counter(0)
		_, err := listeners.NewRPC(
			&tc.con,
			logger.New(fixtures.LogCategory),
			&count,
			rpc.NewServer(),
			&tls.Config{},
			[32]byte{},
		)
		assert.Equal(t, tc.err, err, tc.name)
	}
}

func TestNewRPCAcceptsAllForms(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Bandwidth:          10000000,
		Listen:             []string{"*:2130", "[::1]:2130", "127.0.0.1:2130"},
	}
	count := counter.Counter(0)

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "*:2130", con.Listen[0], "configuration modified")
}
