// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/contract"
	"github.com/bitmark-inc/transact/executor"
	"github.com/bitmark-inc/transact/family/balance"
	"github.com/bitmark-inc/transact/family/xo"
	"github.com/bitmark-inc/transact/handler"
	"github.com/bitmark-inc/transact/transaction"
)

// the smart contracts known to this program
type families struct {
	xo      *xo.Handler
	balance *balance.Handler
}

// requires a logger channel so must be called after logger.Initialise
func newFamilies(config *Configuration) *families {
	return &families{
		xo:      xo.New(config.Families.XO.Prefix),
		balance: balance.New(config.Families.Balance.Prefix, config.Families.Balance.OwnerLength),
	}
}

func (f *families) handlers() []handler.TransactionHandler {
	return []handler.TransactionHandler{
		contract.Adapt[string](f.xo),
		contract.Adapt[address.DoubleKey](f.balance),
	}
}

// registry with every family registered
func (f *families) registry() (*executor.Registry, error) {
	r := executor.New()
	for _, h := range f.handlers() {
		if err := r.Register(h); nil != err {
			return nil, err
		}
	}
	return r, nil
}

// address of the natural key formed by keys
//
// returns the address and the normalized key
func (f *families) address(family string, keys []string) (string, string, error) {
	switch family {
	case xo.FamilyName:
		if 1 != len(keys) {
			return "", "", ErrKeyCount
		}
		return addressOf[string](f.xo.Addresser(), keys[0])

	case balance.FamilyName:
		if 2 != len(keys) {
			return "", "", ErrKeyCount
		}
		key := address.DoubleKey{First: keys[0], Second: keys[1]}
		return addressOf[address.DoubleKey](f.balance.Addresser(), key)

	default:
		return "", "", ErrUnknownFamily
	}
}

func addressOf[K comparable](a address.Addresser[K], key K) (string, string, error) {
	s, err := a.Compute(key)
	if nil != err {
		return "", "", err
	}
	return s, a.Normalize(key), nil
}

// build an unapplied transaction for the latest version of a family
func (f *families) transaction(family string, signer string, payload []byte) (*transaction.Transaction, error) {
	for _, h := range f.handlers() {
		if family != h.FamilyName() {
			continue
		}
		signerPublicKey, err := transaction.SignerFromString(signer)
		if nil != err {
			return nil, err
		}
		versions := h.FamilyVersions()
		return transaction.New(family, versions[len(versions)-1], signerPublicKey, payload), nil
	}
	return nil, ErrUnknownFamily
}
