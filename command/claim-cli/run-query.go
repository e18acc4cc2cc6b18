// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimd/claim"
	"github.com/bitmark-inc/claimd/fault"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	proof, err := checkProof(c)
	if nil != err {
		return err
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(c.String("instance"), proof)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGetAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkHex(c.String("address"), fault.MissingAddress)
	if nil != err {
		return err
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAddress(c.String("instance"), address)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 || count > claim.MaximumListCount {
		return fault.InvalidCount
	}

	start, err := hex.DecodeString(c.String("start"))
	if nil != err {
		return err
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(c.String("instance"), start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
