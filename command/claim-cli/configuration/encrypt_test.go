// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/fault"
)

func TestEncryptDecryptPrivateKey(t *testing.T) {
	passwords := []string{"12345678", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for i, password := range passwords {
		key, err := account.NewPrivateKey(true)
		assert.Nil(t, err, "%d: new key", i)

		salt, secretKey, err := hashPassword(password)
		assert.Nil(t, err, "%d: hash password", i)

		encrypted, err := encryptPrivateKey(key.Bytes(), secretKey)
		assert.Nil(t, err, "%d: encrypt", i)
		assert.False(t, bytes.Contains(encrypted, key.Bytes()[:32]), "%d: plaintext visible", i)

		again, err := encryptPrivateKey(key.Bytes(), secretKey)
		assert.Nil(t, err, "%d: encrypt again", i)
		assert.NotEqual(t, encrypted, again, "%d: repeated IV", i)

		secretKey2, err := generateKey(password, salt)
		assert.Nil(t, err, "%d: regenerate key", i)

		decrypted, err := decryptPrivateKey(encrypted, secretKey2)
		assert.Nil(t, err, "%d: decrypt", i)
		assert.Equal(t, key.Bytes(), decrypted, "%d: private key", i)
	}
}

func TestEncryptWrongLength(t *testing.T) {
	_, secretKey, err := hashPassword("12345678")
	assert.Nil(t, err, "hash password")

	_, err = encryptPrivateKey(make([]byte, 32), secretKey)
	assert.Equal(t, fault.InvalidKeyLength, err, "short key")

	_, err = decryptPrivateKey(make([]byte, 20), secretKey)
	assert.Equal(t, fault.InvalidKeyLength, err, "short ciphertext")
}

func TestSaltText(t *testing.T) {
	salt, err := MakeSalt()
	assert.Nil(t, err, "make salt")

	text, err := salt.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, salt.String(), string(text), "text")

	var s Salt
	assert.Nil(t, s.UnmarshalText(text), "unmarshal")
	assert.Equal(t, *salt, s, "round trip")

	assert.Equal(t, fault.InvalidSalt, s.UnmarshalText([]byte("0102")), "short salt")
	assert.NotNil(t, s.UnmarshalText([]byte("zz")), "bad hex")
}
