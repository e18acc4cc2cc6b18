// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/command/claim-cli/configuration"
	"github.com/bitmark-inc/claimd/fault"
)

const password = "12345678"

func run(arguments ...string) (string, error) {
	out := &bytes.Buffer{}
	app := newApp(out, ioutil.Discard)
	err := app.Run(append([]string{"claim-cli"}, arguments...))
	return out.String(), err
}

func TestSetupAndAdd(t *testing.T) {
	dir, err := ioutil.TempDir("", "claim-cli")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "conf", "claim-cli.json")

	_, err = run("--config", file, "--identity", "alice", "--password", password,
		"setup", "--connect", "127.0.0.1:2130, 127.0.0.1:2131", "--description", "first")
	assert.Nil(t, err, "setup")

	config, err := configuration.Load(file)
	assert.Nil(t, err, "load")
	assert.True(t, config.TestNet, "default network")
	assert.Equal(t, []string{"127.0.0.1:2130", "127.0.0.1:2131"}, config.Connections, "connections")
	assert.Equal(t, "alice", config.DefaultIdentity, "default identity")

	_, err = run("--config", file, "--identity", "alice", "--password", password,
		"setup", "--connect", "127.0.0.1:2130", "--description", "again")
	assert.NotNil(t, err, "setup over existing file")

	_, err = run("--config", file, "--identity", "bob", "--password", password,
		"add", "--description", "second")
	assert.Nil(t, err, "add bob")

	live, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "live key")
	test, err := account.PrivateKeyFromBytes(live.Bytes(), true)
	assert.Nil(t, err, "test key")

	_, err = run("--config", file, "--identity", "carol",
		"add", "--description", "watch", "--account", test.Account.String())
	assert.Nil(t, err, "add receive only")

	_, err = run("--config", file, "--identity", "dave", "--password", "short",
		"add", "--description", "weak")
	assert.Equal(t, fault.InvalidPasswordLength, err, "short password")

	out, err := run("--config", file, "identities")
	assert.Nil(t, err, "identities")

	var info configuration.Info
	assert.Nil(t, json.Unmarshal([]byte(out), &info), "identities output")
	assert.Equal(t, 3, len(info.Identities), "identity count")
	assert.Equal(t, "alice", info.Identities[0].Name, "first identity")
	assert.Equal(t, test.Account.String(), info.Identities[2].Account, "receive only account")
	assert.False(t, info.Identities[2].CanSign, "receive only")

	config, err = configuration.Load(file)
	assert.Nil(t, err, "reload")
	_, err = config.Private(password, "bob")
	assert.Nil(t, err, "decrypt bob")
}

func TestSetupBadNetwork(t *testing.T) {
	dir, err := ioutil.TempDir("", "claim-cli")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	_, err = run("--config", filepath.Join(dir, "claim-cli.json"), "--identity", "alice", "--password", password,
		"setup", "--network", "moon", "--connect", "127.0.0.1:2130", "--description", "first")
	assert.Equal(t, fault.InvalidChain, err, "bad network")
}

func TestGenerate(t *testing.T) {
	out, err := run("generate")
	assert.Nil(t, err, "generate")

	var reply generateReply
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "generate output")

	acc, err := account.AccountFromBase58(reply.Account)
	assert.Nil(t, err, "live account")
	assert.False(t, acc.IsTesting(), "live network")

	testAcc, err := account.AccountFromBase58(reply.TestAccount)
	assert.Nil(t, err, "test account")
	assert.True(t, testAcc.IsTesting(), "test network")
	assert.Equal(t, acc.PublicKeyBytes(), testAcc.PublicKeyBytes(), "same public key")

	key, err := hex.DecodeString(reply.PrivateKey)
	assert.Nil(t, err, "private key hex")
	private, err := account.PrivateKeyFromBytes(key, false)
	assert.Nil(t, err, "private key")
	assert.True(t, acc.Equal(private.Account), "key matches account")
}

func proofContext(proof string, file string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("proof", proof, "")
	set.String("file", file, "")
	return cli.NewContext(nil, set, nil)
}

func TestCheckProof(t *testing.T) {
	p, err := checkProof(proofContext("646f632d31", ""))
	assert.Nil(t, err, "hex proof")
	assert.Equal(t, []byte("doc-1"), p, "decoded proof")

	_, err = checkProof(proofContext("", ""))
	assert.Equal(t, fault.MissingProof, err, "no proof")

	_, err = checkProof(proofContext("zz", ""))
	assert.NotNil(t, err, "bad hex")

	f, err := ioutil.TempFile("", "proof")
	assert.Nil(t, err, "temp file")
	defer os.Remove(f.Name())
	_, err = f.WriteString("document body")
	assert.Nil(t, err, "write")
	f.Close()

	p, err = checkProof(proofContext("", f.Name()))
	assert.Nil(t, err, "file proof")
	digest := sha3.Sum256([]byte("document body"))
	assert.Equal(t, digest[:], p, "file digest")

	_, err = checkProof(proofContext("646f632d31", f.Name()))
	assert.NotNil(t, err, "both proof and file")
}

func TestChecks(t *testing.T) {
	c, err := checkConnect(" a:1 ,, b:2")
	assert.Nil(t, err, "connect")
	assert.Equal(t, []string{"a:1", "b:2"}, c, "connections")

	_, err = checkConnect(" , ")
	assert.Equal(t, fault.MissingConnection, err, "no connection")

	for _, n := range []string{"claims", "live"} {
		testnet, err := checkNetwork(n)
		assert.Nil(t, err, n)
		assert.False(t, testnet, n)
	}
	for _, n := range []string{"testing", "test", "local"} {
		testnet, err := checkNetwork(n)
		assert.Nil(t, err, n)
		assert.True(t, testnet, n)
	}

	_, err = checkName("")
	assert.Equal(t, fault.MissingIdentityName, err, "no name")
	_, err = checkDescription("")
	assert.Equal(t, fault.MissingDescription, err, "no description")
}
