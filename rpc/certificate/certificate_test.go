// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/claimd/rpc/certificate"
	"github.com/bitmark-inc/claimd/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cert, key, err := fixtures.CertificatePair()
	assert.Nil(t, err, "certificate generation")

	tlsConfig, fin, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cert, key)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(tlsConfig.Certificates))

	expected := sha3.Sum256(tlsConfig.Certificates[0].Certificate[0])
	assert.Equal(t, expected, fin, "fingerprint")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, key, err := fixtures.CertificatePair()
	assert.Nil(t, err)

	_, _, err = certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", key)
	assert.NotNil(t, err)
}
