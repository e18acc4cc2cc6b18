// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/bitmark-inc/claimd/background"
)

type bg struct {
	initial int
	count   int
	final   int
}

func (state *bg) Run(args interface{}, shutdown <-chan struct{}) {
	t := args.(*testing.T)

	if state.count != state.initial {
		t.Errorf("unexpected initial count: %d", state.count)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.count += 1
		time.Sleep(time.Millisecond)
	}
	state.count = state.final
}

func TestBackground(t *testing.T) {
	defer goleak.VerifyNone(t)

	proc1 := &bg{initial: 246, count: 246, final: 987654321}
	proc2 := &bg{initial: 777, count: 777, final: 897645312}

	p := background.Start(background.Processes{proc1, proc2}, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	if proc1.final != proc1.count {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", proc1.final, proc1.count)
	}
	if proc2.final != proc2.count {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", proc2.final, proc2.count)
	}

	// a second stop is harmless
	p.Stop()
}
