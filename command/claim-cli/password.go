// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/claimd/fault"
)

const minimumPasswordLength = 8

func readPassword(e io.Writer, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal to read password: use --password")
	}

	fmt.Fprint(e, prompt)
	password, err := terminal.ReadPassword(fd)
	fmt.Fprintln(e)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// prompt for a password to unlock an identity
func promptPassword(e io.Writer, name string) (string, error) {
	return readPassword(e, fmt.Sprintf("password for %s: ", name))
}

// prompt twice for a new password
func promptNewPassword(e io.Writer) (string, error) {
	password, err := readPassword(e, fmt.Sprintf("Set identity password (length >= %d): ", minimumPasswordLength))
	if nil != err {
		return "", err
	}
	if err := checkPasswordLength(password); nil != err {
		return "", err
	}

	verify, err := readPassword(e, "Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verify {
		return "", fault.PasswordMismatch
	}
	return password, nil
}

func checkPasswordLength(password string) error {
	if len(password) < minimumPasswordLength {
		return fault.InvalidPasswordLength
	}
	return nil
}
