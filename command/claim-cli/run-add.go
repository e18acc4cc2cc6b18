// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	key := c.String("key")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
	}

	if "" != key && "" != acc {
		return fmt.Errorf("only one of key or account is allowed")
	}

	if "" != acc {
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
	} else {
		var password string
		password, err = newPassword(c, m)
		if nil != err {
			return err
		}
		err = m.config.AddIdentity(name, description, key, password)
	}
	if nil != err {
		return err
	}

	// require configuration update
	m.save = true
	return nil
}
