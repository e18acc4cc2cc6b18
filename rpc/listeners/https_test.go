// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/rpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/rpc/fixtures"
	"github.com/bitmark-inc/claimd/rpc/handler"
	"github.com/bitmark-inc/claimd/rpc/listeners"
	"github.com/bitmark-inc/claimd/rpc/metrics"
	"github.com/bitmark-inc/logger"
)

func newHandler() handler.Handler {
	return handler.New(
		logger.New(fixtures.LogCategory),
		rpc.NewServer(),
		func() interface{} { return map[string]string{"chain": "testing"} },
		metrics.New().Handler(),
		5,
	)
}

func TestHTTPSListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	con := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Allow: map[string][]string{
			handler.AllowDetails: {"127.0.0.1/32"},
		},
	}

	tlsConfig, _ := tlsConfiguration(t)

	l, err := listeners.NewHTTPS(&con, logger.New(fixtures.LogCategory), tlsConfig, newHandler())
	assert.Nil(t, err, "wrong NewHTTPS")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	client := http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	resp, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d/claimd/details", port))
	if nil != err {
		t.Fatalf("get with error: %s", err)
	}
	defer resp.Body.Close()

	var details map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&details)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status")
	assert.Equal(t, "testing", details["chain"], "wrong details")

	resp2, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d/metrics", port))
	if nil != err {
		t.Fatalf("get with error: %s", err)
	}
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode, "metrics should be denied")
}

func TestNewHTTPSDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), &tls.Config{}, newHandler())
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "listener should be disabled")
}

func TestNewHTTPSInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2131"},
	}
	_, err := listeners.NewHTTPS(&con, logger.New(fixtures.LogCategory), &tls.Config{}, newHandler())
	assert.Equal(t, fault.MissingParameters, err, "wrong error")

	con = listeners.HTTPSConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:2131"},
		Allow: map[string][]string{
			handler.AllowMetrics: {"not-a-cidr"},
		},
	}
	_, err = listeners.NewHTTPS(&con, logger.New(fixtures.LogCategory), &tls.Config{}, newHandler())
	assert.NotNil(t, err, "invalid CIDR accepted")
}
