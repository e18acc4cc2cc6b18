// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimd/account"
)

// LogCategory - logger channel for tests
const LogCategory = "testing"

const logDirectory = "testing"

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(logDirectory, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(logDirectory)
}

var pair struct {
	once        sync.Once
	certificate string
	key         string
	err         error
}

// CertificatePair - a self signed PEM certificate and key for localhost
func CertificatePair() (string, string, error) {
	pair.once.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("claimd test", validUntil, false, []string{"127.0.0.1"})
		pair.certificate = string(cert)
		pair.key = string(key)
		pair.err = err
	})
	return pair.certificate, pair.key, pair.err
}

// Key - a fresh signing key on the test network
func Key() *account.PrivateKey {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		panic(err)
	}
	return key
}
