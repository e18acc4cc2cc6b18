// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimd/counter"
)

// access control names in the allow map
const (
	AllowDetails = "details"
	AllowMetrics = "metrics"
)

// Handler - HTTP entry points
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Metrics(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}

func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}

// Close - nothing to do, the http server owns the connection
func (c *InternalConnection) Close() error {
	return nil
}

type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	details            func() interface{}
	metrics            http.Handler
	count              counter.Counter
	maximumConnections uint64
	allow              map[string][]*net.IPNet
}

// New - create the HTTP handler
//
// details produces the body of the details page
func New(
	log *logger.L,
	server *rpc.Server,
	details func() interface{},
	metrics http.Handler,
	maximumConnections uint64,
) Handler {
	return &httpHandler{
		log:                log,
		server:             server,
		details:            details,
		metrics:            metrics,
		maximumConnections: maximumConnections,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - replace the access control lists
func (h *httpHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - this matches anything not matched and returns error
func (h *httpHandler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *httpHandler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.TryIncrement(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("rpc request error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// Details - GET for the same response as Node.Info RPC
func (h *httpHandler) Details(w http.ResponseWriter, r *http.Request) {
	if !h.permitted(AllowDetails, w, r) {
		return
	}
	defer h.count.Decrement()

	sendReply(w, h.details())
}

// Metrics - prometheus scrape endpoint
func (h *httpHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if !h.permitted(AllowMetrics, w, r) {
		return
	}
	defer h.count.Decrement()

	h.metrics.ServeHTTP(w, r)
}

// check method, access list and connection limit; on success the
// caller must decrement the count
func (h *httpHandler) permitted(name string, w http.ResponseWriter, r *http.Request) bool {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return false
	}

	if !h.allowed(name, r.RemoteAddr) {
		h.log.Warnf("deny %s access: %q", name, r.RemoteAddr)
		sendForbidden(w)
		return false
	}

	if !h.count.TryIncrement(h.maximumConnections) {
		sendTooManyRequests(w)
		return false
	}
	return true
}

func (h *httpHandler) allowed(name string, remoteAddr string) bool {
	last := strings.LastIndex(remoteAddr, ":")
	if last < 0 {
		return false
	}
	ip := net.ParseIP(strings.Trim(remoteAddr[:last], "[]"))
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[name] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
