// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimd/rpc/claims"
)

func TestMessage(t *testing.T) {
	message := claims.Message(claims.OpLock, "tight", 300, []byte("doc"), []byte{0xff})
	expected := []byte{
		0x02,
		0x05, 't', 'i', 'g', 'h', 't',
		0xac, 0x02,
		0x03, 'd', 'o', 'c',
		0x01, 0xff,
	}
	assert.Equal(t, expected, message, "wrong message")

	empty := claims.Message(claims.OpCreate, "", 0, nil, nil)
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x00}, empty, "wrong empty message")

	next := claims.Message(claims.OpCreate, "", 1, nil, nil)
	assert.NotEqual(t, empty, next, "nonce not signed")
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "Claims.CreateAddress", claims.OpCreateAddress.String())
	assert.Equal(t, "*unknown*", claims.Operation(0).String())
}

func TestHexBytesJSON(t *testing.T) {
	arguments := claims.GetArguments{
		Instance: "tight",
		Proof:    claims.HexBytes{0x01, 0xab},
	}
	buffer, err := json.Marshal(arguments)
	assert.Nil(t, err)
	assert.Equal(t, `{"instance":"tight","proof":"01ab"}`, string(buffer))

	var decoded claims.GetArguments
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err)
	assert.Equal(t, arguments, decoded)

	err = json.Unmarshal([]byte(`{"proof":"xyz"}`), &decoded)
	assert.NotNil(t, err, "invalid hex accepted")
}
