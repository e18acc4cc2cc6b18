// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimd/account"
)

// the same key gives a different account on each network
type generateReply struct {
	Account     string `json:"account"`
	TestAccount string `json:"test_account"`
	PublicKey   string `json:"public_key"`
	PrivateKey  string `json:"private_key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	live, err := account.NewPrivateKey(false)
	if nil != err {
		return err
	}
	test, err := account.PrivateKeyFromBytes(live.Bytes(), true)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Account:     live.Account.String(),
		TestAccount: test.Account.String(),
		PublicKey:   hex.EncodeToString(live.Account.PublicKeyBytes()),
		PrivateKey:  hex.EncodeToString(live.Bytes()),
	})
}
