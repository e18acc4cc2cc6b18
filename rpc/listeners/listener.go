// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimd/fault"
)

const minConnectionCount = 1

// Listener - a server accepting connections in the background
type Listener interface {
	Serve() error
	Close()
}

// network type for each listen address
//
// "*:PORT" is rewritten in place to "[::]:PORT" and listens on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("empty listen address")
			return nil, fault.InvalidIpAddress
		}

		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, fault.InvalidIpAddress
		}
		if "" == port {
			return nil, fault.InvalidPortNumber
		}

		switch {
		case "*" == host:
			addrs[i] = "[::]:" + port
			host = "::"
			parsed[i] = "tcp"
		case strings.Contains(host, ":"):
			parsed[i] = "tcp6"
		default:
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, err
		}
	}

	return parsed, nil
}
