// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimd/command/claim-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	testnet, err := checkNetwork(c.String("network"))
	if nil != err {
		return err
	}

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connections, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "testnet: %t\n", testnet)
		fmt.Fprintf(m.e, "connections: %q\n", connections)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := filepath.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		TestNet:         testnet,
		Connections:     connections,
		Identities:      make(map[string]configuration.Identity),
	}

	password, err := newPassword(c, m)
	if nil != err {
		return err
	}

	err = config.AddIdentity(name, description, c.String("key"), password)
	if nil != err {
		return err
	}

	m.config = config
	m.testnet = testnet
	m.save = true
	return nil
}

// password from the global flag or prompted twice
func newPassword(c *cli.Context, m *metadata) (string, error) {
	password := c.GlobalString("password")
	if "" == password {
		return promptNewPassword(m.e)
	}
	if err := checkPasswordLength(password); nil != err {
		return "", err
	}
	return password, nil
}
