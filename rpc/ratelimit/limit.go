// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/claimd/fault"
)

// Limiter - request throttle shared by all calls to one RPC service
type Limiter struct {
	limiter      *rate.Limiter
	maximumCount int
}

// New - a limiter allowing perSecond requests with bursts of burst;
// counted requests may ask for at most maximumCount items
func New(perSecond float64, burst int, maximumCount int) *Limiter {
	return &Limiter{
		limiter:      rate.NewLimiter(rate.Limit(perSecond), burst),
		maximumCount: maximumCount,
	}
}

// Limit - wait for the slot of a single request
func (l *Limiter) Limit() error {
	return reserve(l.limiter, 1)
}

// LimitN - wait for the slots of a request returning count items
func (l *Limiter) LimitN(count int) error {

	// invalid count still costs a single request
	if count <= 0 || count > l.maximumCount {
		if err := reserve(l.limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}

	return reserve(l.limiter, count)
}

func reserve(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
