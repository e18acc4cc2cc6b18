// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"testing"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimd/messagebus"
)

type frame struct {
	data  []byte
	flags zmq.Flag
}

type recorder struct {
	frames []frame
	fail   int
}

func (r *recorder) SendBytes(data []byte, flags zmq.Flag) (int, error) {
	if r.fail > 0 && len(r.frames)+1 == r.fail {
		return 0, zmq.Errno(11)
	}
	r.frames = append(r.frames, frame{data: data, flags: flags})
	return len(data), nil
}

func TestSendMessage(t *testing.T) {
	r := &recorder{}
	item := &messagebus.Message{
		Command:    "ClaimCreated",
		Parameters: [][]byte{[]byte("tight"), {0x13, 0x01}, []byte("doc-1")},
	}

	err := sendMessage(r, item)
	assert.Nil(t, err)

	expected := []frame{
		{[]byte("ClaimCreated"), zmq.SNDMORE | zmq.DONTWAIT},
		{[]byte("tight"), zmq.SNDMORE | zmq.DONTWAIT},
		{[]byte{0x13, 0x01}, zmq.SNDMORE | zmq.DONTWAIT},
		{[]byte("doc-1"), zmq.DONTWAIT},
	}
	assert.Equal(t, expected, r.frames)
}

func TestSendCommandOnly(t *testing.T) {
	r := &recorder{}
	err := sendMessage(r, &messagebus.Message{Command: "ping"})
	assert.Nil(t, err)
	assert.Equal(t, []frame{{[]byte("ping"), zmq.DONTWAIT}}, r.frames)
}

func TestSendStopsOnError(t *testing.T) {
	r := &recorder{fail: 2}
	item := &messagebus.Message{
		Command:    "ClaimLocked",
		Parameters: [][]byte{[]byte("tight"), {0x13}, []byte("xyz")},
	}

	err := sendMessage(r, item)
	assert.NotNil(t, err)
	assert.Equal(t, 1, len(r.frames), "nothing after the failed frame")
}
