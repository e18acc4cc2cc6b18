// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
	"sync/atomic"
)

// Message - a notification command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - deliver every message to all current listeners
//
// a listener whose channel is full misses the message, senders are
// never blocked
type BroadcastQueue struct {
	dropped uint64 // first for 64 bit alignment

	sync.RWMutex
	listeners []chan Message
}

// Bus - the set of all queues
var Bus = struct {
	Broadcast *BroadcastQueue
}{
	Broadcast: &BroadcastQueue{},
}

// Send - queue a message to all listeners
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	// copy so later changes by the sender are not visible to listeners
	p := make([][]byte, len(parameters))
	for i, item := range parameters {
		p[i] = make([]byte, len(item))
		copy(p[i], item)
	}
	m := Message{
		Command:    command,
		Parameters: p,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
			atomic.AddUint64(&queue.dropped, 1)
		}
	}
}

// Chan - add a listener with the given buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = 1
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - remove and close all listeners
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, listener := range queue.listeners {
		close(listener)
	}
	queue.listeners = nil
}

// Dropped - count of messages a full listener did not receive
func (queue *BroadcastQueue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
