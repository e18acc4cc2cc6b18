// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus counters for the RPC services
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "claimd"

// result label values
const (
	ResultOk    = "ok"
	ResultError = "error"
)

// Recorder - what a service needs to report its requests
type Recorder interface {
	Request(method string, err error)
	Height(instance string, height uint64)
}

// Metrics - a private prometheus registry with the claimd collectors
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	height   *prometheus.GaugeVec
}

// New - create and register the collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "RPC requests by method and result",
			},
			[]string{"method", "result"},
		),
		height: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "height",
				Help:      "height of the last successful request of a registry",
			},
			[]string{"instance"},
		),
	}
	m.registry.MustRegister(m.requests, m.height)
	return m
}

// Request - count one request
func (m *Metrics) Request(method string, err error) {
	result := ResultOk
	if nil != err {
		result = ResultError
	}
	m.requests.WithLabelValues(method, result).Inc()
}

// Height - record a registry height
func (m *Metrics) Height(instance string, height uint64) {
	m.height.WithLabelValues(instance).Set(float64(height))
}

// Handler - HTTP handler exposing the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Discard - a recorder that drops everything
type Discard struct{}

// Request - ignored
func (Discard) Request(string, error) {}

// Height - ignored
func (Discard) Height(string, uint64) {}
