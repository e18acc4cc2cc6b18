// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/messagebus"
	"github.com/bitmark-inc/claimd/util"
	"github.com/bitmark-inc/claimd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcasterZapDomain = "broadcaster"
)

// multipart sender, satisfied by *zmq.Socket
type sender interface {
	SendBytes([]byte, zmq.Flag) (int, error)
}

type broadcaster struct {
	log     *logger.L
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, queue <-chan messagebus.Message) error {

	log := logger.New("broadcaster")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	brdc.log = log
	brdc.queue = queue

	log.Info("initialising…")

	c, err := util.NewConnections(broadcast)
	if nil != err {
		log.Errorf("ip and port error: %s", err)
		return err
	}

	// allocate IPv4 and IPv6 sockets
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, c)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - forward queued events until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s  data: %x", item.Command, item.Parameters)
			if nil != brdc.socket4 {
				brdc.send(brdc.socket4, &item)
			}
			if nil != brdc.socket6 {
				brdc.send(brdc.socket6, &item)
			}
		}
	}

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// errors are logged and the message is dropped
func (brdc *broadcaster) send(socket sender, item *messagebus.Message) {
	err := sendMessage(socket, item)
	if nil != err {
		brdc.log.Warnf("send: %s  error: %s", item.Command, err)
	}
}

// write command then each parameter as one multipart message
func sendMessage(socket sender, item *messagebus.Message) error {
	flags := zmq.SNDMORE | zmq.DONTWAIT
	if 0 == len(item.Parameters) {
		flags = zmq.DONTWAIT
	}
	_, err := socket.SendBytes([]byte(item.Command), flags)
	if nil != err {
		return err
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags = zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flags = zmq.DONTWAIT
		}
		_, err = socket.SendBytes(p, flags)
		if nil != err {
			return err
		}
	}
	return nil
}
