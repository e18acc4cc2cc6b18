// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimd/counter"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/rpc/certificate"
	"github.com/bitmark-inc/claimd/rpc/handler"
	"github.com/bitmark-inc/claimd/rpc/listeners"
	"github.com/bitmark-inc/claimd/rpc/metrics"
	"github.com/bitmark-inc/claimd/rpc/node"
	"github.com/bitmark-inc/claimd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	connectionCount counter.Counter
	listeners       []listeners.Listener

	// set once during initialise
	initialised bool
}

var globalData rpcData

// Initialise - start the RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, readOnly bool) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	m := metrics.New()
	s, n := server.Create(log, version, &globalData.connectionCount, m, readOnly)

	tlsConfig, fingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		logger.New(rpcName),
		&globalData.connectionCount,
		s,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}

	if err := rpcListener.Serve(); nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, httpsFingerprint, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			stopAll()
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		details := func() interface{} {
			var reply node.InfoReply
			n.Fill(&reply)
			return reply
		}
		hdlr := handler.New(logger.New(httpsName), s, details, m.Handler(), httpsConfiguration.MaximumConnections)

		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, logger.New(httpsName), httpsTLS, hdlr)
		if nil != err {
			stopAll()
			return err
		}
		if err := httpsListener.Serve(); nil != err {
			stopAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	} else {
		log.Infof("disable: %s", httpsName)
	}

	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	stopAll()
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// must hold the lock
func stopAll() {
	for _, l := range globalData.listeners {
		l.Close()
	}
	globalData.listeners = nil
}
