// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/zmqutil"
)

const (
	publicKey  = "PUBLIC:5ecf4dbdd4f0ef5b1c1b6c6e3a1f1a0f5cfb2a9b4d3e2f1a0b1c2d3e4f5a6b7c"
	privateKey = "PRIVATE:0f1e2d3c4b5a69788796a5b4c3d2e1f00f1e2d3c4b5a69788796a5b4c3d2e1f0"
)

func TestParseKey(t *testing.T) {
	data, private, err := zmqutil.ParseKey("  " + publicKey + "\n")
	assert.Nil(t, err)
	assert.False(t, private)
	assert.Equal(t, 32, len(data))
	assert.Equal(t, byte(0x5e), data[0])

	data, private, err = zmqutil.ParseKey(privateKey)
	assert.Nil(t, err)
	assert.True(t, private)
	assert.Equal(t, 32, len(data))

	_, _, err = zmqutil.ParseKey("SECRET:00")
	assert.Equal(t, fault.InvalidPublicKeyFile, err)

	_, _, err = zmqutil.ParseKey("PUBLIC:0011")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short public key")

	_, _, err = zmqutil.ParseKey("PRIVATE:0011")
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "short private key")

	_, _, err = zmqutil.ParseKey("PUBLIC:xyz")
	assert.NotNil(t, err, "bad hex")
}

func TestReadKeys(t *testing.T) {
	_, err := zmqutil.ReadPublicKey(privateKey)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private as public")

	_, err = zmqutil.ReadPrivateKey(publicKey)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public as private")

	dir, err := ioutil.TempDir("", "zmqutil-test")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.public")
	assert.Nil(t, ioutil.WriteFile(fileName, []byte(publicKey+"\n"), 0600))

	key, err := zmqutil.ReadPublicKeyFile(fileName)
	assert.Nil(t, err)
	assert.Equal(t, 32, len(key))

	_, err = zmqutil.ReadPrivateKeyFile(filepath.Join(dir, "missing"))
	assert.NotNil(t, err)
}

func TestMakeKeyPair(t *testing.T) {
	if !zmq.HasCurve() {
		t.Skip("libzmq built without curve")
	}

	dir, err := ioutil.TempDir("", "zmqutil-test")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "claimd.public")
	privateFile := filepath.Join(dir, "claimd.private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Nil(t, err)

	data, err := ioutil.ReadFile(publicFile)
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PUBLIC:"))

	_, err = zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err)

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Equal(t, fault.KeyFileAlreadyExists, err)
}
