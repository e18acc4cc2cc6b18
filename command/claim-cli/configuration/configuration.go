// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connections     []string            `json:"connections"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - plain account plus encrypted private key
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data,omitempty"`
	Salt        string `json:"salt,omitempty"`
}

// InfoIdentity - public part of an identity
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	CanSign     bool   `json:"can_sign"`
}

// Info - configuration without any private data
type Info struct {
	DefaultIdentity string         `json:"default_identity"`
	TestNet         bool           `json:"testnet"`
	Connections     []string       `json:"connections"`
	Identities      []InfoIdentity `json:"identities"`
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {
	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	config := &Configuration{}
	if err := json.NewDecoder(f).Decode(config); nil != err {
		return nil, err
	}
	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}
	return config, nil
}

// Save - write to a temporary file then rename over the original
//
// the previous version is kept with a ".bk" suffix
func Save(filename string, config *Configuration) error {
	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	b, err := json.MarshalIndent(config, "", "  ")
	if nil != err {
		return err
	}

	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if nil != err {
		return err
	}
	_, err = f.Write(append(b, '\n'))
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		return err
	}

	if err := os.Remove(previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	if err := os.Rename(filename, previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Info - restricted view sorted by identity name
func (config *Configuration) Info() *Info {
	info := &Info{
		DefaultIdentity: config.DefaultIdentity,
		TestNet:         config.TestNet,
		Connections:     config.Connections,
		Identities:      make([]InfoIdentity, 0, len(config.Identities)),
	}
	for name, id := range config.Identities {
		info.Identities = append(info.Identities, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			CanSign:     "" != id.Data,
		})
	}
	sort.Slice(info.Identities, func(i, j int) bool {
		return info.Identities[i].Name < info.Identities[j].Name
	})
	return info
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}
	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return account.AccountFromBase58(id.Account)
}

// Private - find identity and decrypt its private key
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id, config.TestNet)
}

// AddIdentity - store an encrypted private key
//
// an empty privateKey generates a new one
func (config *Configuration) AddIdentity(name string, description string, privateKey string, password string) error {
	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	var key *account.PrivateKey
	var err error
	if "" == privateKey {
		key, err = account.NewPrivateKey(config.TestNet)
	} else {
		var b []byte
		b, err = hex.DecodeString(privateKey)
		if nil != err {
			return err
		}
		key, err = account.PrivateKeyFromBytes(b, config.TestNet)
	}
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptPrivateKey(key.Bytes(), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     key.Account.String(),
		Data:        hex.EncodeToString(encrypted),
		Salt:        salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}
	return nil
}

// AddReceiveOnlyIdentity - store an account that cannot sign
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {
	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	a, err := account.AccountFromBase58(acc)
	if nil != err {
		return err
	}
	if a.IsTesting() != config.TestNet {
		return fault.WrongNetworkForPublicKey
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}
	return nil
}
