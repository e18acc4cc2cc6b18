// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/fault"
)

const privateKeySize = 64

// Private - decrypted identity
type Private struct {
	PrivateKey  *account.PrivateKey `json:"-"`
	Account     *account.Account    `json:"account"`
	Description string              `json:"description"`
}

// decryptIdentity - check that password unlocks the identity
func decryptIdentity(password string, identity *Identity, test bool) (*Private, error) {
	if "" == identity.Data || "" == identity.Salt {
		return nil, fault.NotPrivateKey
	}

	salt := new(Salt)
	if err := salt.UnmarshalText([]byte(identity.Salt)); nil != err {
		return nil, fault.NotPrivateKey
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	ciphertext, err := hex.DecodeString(identity.Data)
	if nil != err {
		return nil, err
	}

	plaintext, err := decryptPrivateKey(ciphertext, key)
	if nil != err {
		return nil, err
	}

	// a wrong password yields some other valid looking key
	privateKey, err := account.PrivateKeyFromBytes(plaintext[:32], test)
	if nil != err {
		return nil, err
	}
	if privateKey.Account.String() != identity.Account {
		return nil, fault.WrongPassword
	}

	return &Private{
		PrivateKey:  privateKey,
		Account:     privateKey.Account,
		Description: identity.Description,
	}, nil
}

func hashPassword(password string) (*Salt, []byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}

	return salt, key, nil
}

func generateKey(password string, salt *Salt) ([]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	return argon2.Hash(ctx, []byte(password), salt.Bytes())
}

// encryptPrivateKey - AES-CBC with a random IV stored in front
func encryptPrivateKey(plaintext []byte, key []byte) ([]byte, error) {
	if privateKeySize != len(plaintext) {
		return nil, fault.InvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	ciphertext := make([]byte, aes.BlockSize+privateKeySize)
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); nil != err {
		return nil, err
	}

	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext[aes.BlockSize:], plaintext)

	return ciphertext, nil
}

func decryptPrivateKey(ciphertext []byte, key []byte) ([]byte, error) {
	if aes.BlockSize+privateKeySize != len(ciphertext) {
		return nil, fault.InvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	plaintext := make([]byte, privateKeySize)
	mode := cipher.NewCBCDecrypter(block, ciphertext[:aes.BlockSize])
	mode.CryptBlocks(plaintext, ciphertext[aes.BlockSize:])

	return plaintext, nil
}
