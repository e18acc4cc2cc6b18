// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/claimd/account"
	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/storage"
)

// dump raw records of one pool from a stopped claimd database
//
//   claim-dumpdb data/claimd C 20 tight
func main() {
	defer exitwithstatus.Handler()

	if len(os.Args) < 4 {
		fmt.Printf("usage: claim-dumpdb database tag count [instance]\n")
		fmt.Printf(" tags:\n")
		poolType := reflect.TypeOf(storage.Pool)
		for i := 0; i < poolType.NumField(); i += 1 {
			fieldInfo := poolType.Field(i)
			fmt.Printf("       %s → %s\n", fieldInfo.Tag.Get("prefix"), fieldInfo.Name)
		}
		exitwithstatus.Exit(1)
	}

	database := os.Args[1]
	tag := os.Args[2]

	count, err := strconv.Atoi(os.Args[3])
	if nil != err {
		exitwithstatus.Message("invalid count: %s", err)
	}

	instance := ""
	if len(os.Args) > 4 {
		instance = os.Args[4]
	}

	err = storage.Initialise(database, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("open database: %q  error: %s", database, err)
	}
	defer storage.Finalise()

	p := poolForTag(tag)
	if nil == p {
		exitwithstatus.Message("no pool corresponding to: %q", tag)
	}

	err = dump(os.Stdout, p, instance, count)
	if nil != err {
		exitwithstatus.Message("fetch error: %s", err)
	}
}

// locate a pool by its struct tag
func poolForTag(tag string) *storage.PoolHandle {
	poolType := reflect.TypeOf(storage.Pool)
	poolValue := reflect.ValueOf(storage.Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		if tag == poolType.Field(i).Tag.Get("prefix") {
			return poolValue.Field(i).Interface().(*storage.PoolHandle)
		}
	}
	return nil
}

// print up to count records, restricted to one instance if not empty
func dump(w io.Writer, p *storage.PoolHandle, instance string, count int) error {
	cursor := p.NewFetchCursor()
	if "" != instance {
		cursor.Within(append([]byte(instance), 0x00))
	}

	data, err := cursor.Fetch(count)
	if nil != err {
		return err
	}

	for i, e := range data {
		name, item := splitKey(e.Key)
		fmt.Fprintf(w, "%d: instance: %q\n", i, name)
		fmt.Fprintf(w, "%d: key:      %x\n", i, item)
		fmt.Fprintf(w, "%d: value:    %x\n", i, e.Value)

		switch p {
		case storage.Pool.Claims, storage.Pool.Addresses:
			owner, createdAt, err := decodeOwned(e.Value)
			if nil != err {
				fmt.Fprintf(w, "%d: owner error: %s\n", i, err)
				continue
			}
			fmt.Fprintf(w, "%d: owner:    %s\n", i, owner)
			fmt.Fprintf(w, "%d: created:  %d\n", i, createdAt)

		case storage.Pool.Nonces:
			who, err := account.AccountFromBytes(item)
			if nil != err || 8 != len(e.Value) {
				fmt.Fprintf(w, "%d: *invalid nonce record*\n", i)
				continue
			}
			fmt.Fprintf(w, "%d: account:  %s\n", i, who)
			fmt.Fprintf(w, "%d: nonce:    %d\n", i, binary.BigEndian.Uint64(e.Value))

		case storage.Pool.Heights:
			if 8 == len(e.Value) {
				fmt.Fprintf(w, "%d: height:   %d\n", i, binary.BigEndian.Uint64(e.Value))
			}
		}
	}
	return nil
}

// instance ++ 0x00 ++ item
func splitKey(key []byte) (string, []byte) {
	n := bytes.IndexByte(key, 0x00)
	if n < 0 {
		return string(key), nil
	}
	return string(key[:n]), key[n+1:]
}

// createdAt (8 bytes BE) ++ owner bytes
func decodeOwned(value []byte) (*account.Account, uint64, error) {
	if len(value) < 9 {
		return nil, 0, fault.TruncatedRecord
	}
	owner, err := account.AccountFromBytes(value[8:])
	if nil != err {
		return nil, 0, err
	}
	return owner, binary.BigEndian.Uint64(value[:8]), nil
}
