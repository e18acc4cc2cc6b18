// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"sync"

	"github.com/bitmark-inc/claimd/fault"
	"github.com/bitmark-inc/claimd/storage"
	"github.com/bitmark-inc/logger"
)

// Configuration - one registry section of the configuration file
type Configuration struct {
	Name            string   `gluamapper:"name" json:"name"`
	Extensions      []string `gluamapper:"extensions" json:"extensions"`
	CascadeRevoke   bool     `gluamapper:"cascade_revoke" json:"cascade_revoke"`
	SingleUseSecret bool     `gluamapper:"single_use_secret" json:"single_use_secret"`
	RequireLock     bool     `gluamapper:"require_lock" json:"require_lock"`
}

// globals
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	registries  map[string]*Registry
	names       []string
	initialised bool
}

var globalData globalDataType

// Initialise - create the configured registries on the storage pools
//
// storage must already be initialised
func Initialise(configurations []Configuration, bus Broadcaster) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if 0 == len(configurations) {
		return fault.NoRegistries
	}

	globalData.log = logger.New("claim")

	pools := Handles{
		Claims:    storage.Pool.Claims,
		Locks:     storage.Pool.Locks,
		Addresses: storage.Pool.Addresses,
		Heights:   storage.Pool.Heights,
		Nonces:    storage.Pool.Nonces,
	}

	registries := make(map[string]*Registry)
	names := make([]string, 0, len(configurations))

	for _, c := range configurations {
		if _, ok := registries[c.Name]; ok {
			globalData.log.Errorf("duplicate registry: %q", c.Name)
			return fault.DuplicateRegistry
		}

		policy := Policy{
			CascadeRevoke:   c.CascadeRevoke,
			SingleUseSecret: c.SingleUseSecret,
			RequireLock:     c.RequireLock,
		}
		r, err := New(c.Name, c.Extensions, policy, pools, storage.NewDBTransaction, bus)
		if nil != err {
			globalData.log.Errorf("registry: %q  error: %s", c.Name, err)
			return err
		}

		registries[c.Name] = r
		names = append(names, c.Name)
		globalData.log.Infof("registry: %q  height: %d", c.Name, r.Height())
	}

	globalData.registries = registries
	globalData.names = names
	globalData.initialised = true

	return nil
}

// Finalise - forget the registries
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	// wait for any request in progress
	applyLock.Lock()
	globalData.registries = nil
	globalData.names = nil
	globalData.initialised = false
	applyLock.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Get - a registry by name, empty name selects the first configured
func Get(name string) (*Registry, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	if "" == name {
		name = globalData.names[0]
	}

	r, ok := globalData.registries[name]
	if !ok {
		return nil, fault.NoSuchRegistry
	}
	return r, nil
}

// Names - registry names in configuration order
func Names() []string {
	globalData.RLock()
	defer globalData.RUnlock()

	names := make([]string, len(globalData.names))
	copy(names, globalData.names)
	return names
}
