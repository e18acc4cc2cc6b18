// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"
)

// re-encrypt an identity under a freshly prompted password
func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := identityName(c, m.config)
	if nil != err {
		return err
	}

	private, err := checkPrivate(c, m)
	if nil != err {
		return err
	}

	password, err := promptNewPassword(m.e)
	if nil != err {
		return err
	}

	identity := m.config.Identities[name]
	delete(m.config.Identities, name)

	err = m.config.AddIdentity(name, identity.Description, hex.EncodeToString(private.PrivateKey.Bytes()), password)
	if nil != err {
		m.config.Identities[name] = identity
		return err
	}

	m.save = true
	return nil
}
