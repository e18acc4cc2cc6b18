// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/claimd/fault"
)

// Connection - a canonical IP address and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - parse "IPv4:port" or "[IPv6]:port"
//
// a leading "*" means all interfaces and is mapped to "[::]"
func NewConnection(hostPort string) (*Connection, error) {
	hostPort = strings.TrimSpace(hostPort)
	if strings.HasPrefix(hostPort, "*:") {
		hostPort = "[::]" + hostPort[1:]
	}

	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	ip := net.ParseIP(strings.TrimSpace(host))
	if nil == ip {
		return nil, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return nil, err
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	if nil != ip.To4() {
		ip = ip.To4()
	}
	return &Connection{
		ip:   ip,
		port: numericPort,
	}, nil
}

// NewConnections - convert a list of addresses
func NewConnections(hostPort []string) ([]*Connection, error) {
	if 0 == len(hostPort) {
		return nil, fault.MissingParameters
	}
	c := make([]*Connection, len(hostPort))
	for i, hp := range hostPort {
		connection, err := NewConnection(hp)
		if nil != err {
			return nil, err
		}
		c[i] = connection
	}
	return c, nil
}

// CanonicalIPandPort - string form with the given prefix and a
// flag that is true for IPv6 addresses
//
// examples:
//   IPv4:  prefix127.0.0.1:1234
//   IPv6:  prefix[::1]:1234
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(conn.port)
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// String - canonical "IP:port"
func (conn *Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}
