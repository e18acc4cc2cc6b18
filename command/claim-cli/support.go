// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/claimd/chain"
	"github.com/bitmark-inc/claimd/command/claim-cli/configuration"
	"github.com/bitmark-inc/claimd/command/claim-cli/rpccalls"
	"github.com/bitmark-inc/claimd/fault"
)

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// checkFileExists - returns true for a directory
func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}

// identity is required, but not checked against the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", fault.MissingIdentityName
	}
	return name, nil
}

// connect is required, comma separated list
func checkConnect(connect string) ([]string, error) {
	connections := make([]string, 0, 4)
	for _, s := range strings.Split(connect, ",") {
		s = strings.TrimSpace(s)
		if "" != s {
			connections = append(connections, s)
		}
	}
	if 0 == len(connections) {
		return nil, fault.MissingConnection
	}
	return connections, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fault.MissingDescription
	}
	return description, nil
}

// network name to testnet flag
func checkNetwork(network string) (bool, error) {
	switch network {
	case chain.Claims, "live":
		return false, nil
	case chain.Testing, "test", chain.Local:
		return true, nil
	default:
		return false, fault.InvalidChain
	}
}

func checkHex(value string, missing error) ([]byte, error) {
	if "" == value {
		return nil, missing
	}
	return hex.DecodeString(value)
}

// proof from hex or from the hash of a file
func checkProof(c *cli.Context) ([]byte, error) {
	p := c.String("proof")
	f := c.String("file")

	switch {
	case "" != p && "" != f:
		return nil, fmt.Errorf("only one of proof or file is allowed")
	case "" != f:
		data, err := ioutil.ReadFile(f)
		if nil != err {
			return nil, err
		}
		digest := sha3.Sum256(data)
		return digest[:], nil
	default:
		return checkHex(p, fault.MissingProof)
	}
}

// identity name from the global flag or the configured default
func identityName(c *cli.Context, config *configuration.Configuration) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkName(name)
}

// decrypt the selected identity, prompting for a password if needed
func checkPrivate(c *cli.Context, m *metadata) (*configuration.Private, error) {
	name, err := identityName(c, m.config)
	if nil != err {
		return nil, err
	}

	if _, err := m.config.Identity(name); nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(m.e, name)
		if nil != err {
			return nil, err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
	}

	return m.config.Private(password, name)
}

func (m *metadata) connect() (*rpccalls.Client, error) {
	connect := m.config.Connections[m.connectionOffset]
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", connect)
	}
	return rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
}
