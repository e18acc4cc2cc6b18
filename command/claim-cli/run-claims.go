// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimd/command/claim-cli/rpccalls"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/rpc/claims"
)

func runCreate(c *cli.Context) error {
	return runClaim(c, claims.OpCreate)
}

func runLock(c *cli.Context) error {
	return runClaim(c, claims.OpLock)
}

func runUpdate(c *cli.Context) error {
	return runClaim(c, claims.OpUpdate)
}

func runRevoke(c *cli.Context) error {
	return runClaim(c, claims.OpRevoke)
}

func runClaim(c *cli.Context, op claims.Operation) error {

	m := c.App.Metadata["config"].(*metadata)

	proof, err := checkProof(c)
	if nil != err {
		return err
	}

	var secret []byte
	if claims.OpLock == op || claims.OpUpdate == op {
		secret = []byte(c.String("secret"))
	}

	private, err := checkPrivate(c, m)
	if nil != err {
		return err
	}

	instance := c.String("instance")
	if m.verbose {
		fmt.Fprintf(m.e, "operation: %s\n", op)
		fmt.Fprintf(m.e, "instance: %q\n", instance)
		fmt.Fprintf(m.e, "proof: %x\n", proof)
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Claim(op, &rpccalls.ClaimData{
		Key:      private.PrivateKey,
		Instance: instance,
		Proof:    proof,
		Secret:   secret,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkHex(c.String("address"), fault.MissingAddress)
	if nil != err {
		return err
	}

	private, err := checkPrivate(c, m)
	if nil != err {
		return err
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateAddress(private.PrivateKey, c.String("instance"), address)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
