// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/transact/fault"
	"github.com/bitmark-inc/transact/handler"
	"github.com/bitmark-inc/transact/state"
	"github.com/bitmark-inc/transact/storage"
	"github.com/bitmark-inc/transact/transaction"
)

// Registry - handlers by family name and version
type Registry struct {
	sync.RWMutex
	log      *logger.L
	handlers map[familyKey]handler.TransactionHandler
}

type familyKey struct {
	name    string
	version string
}

// New - an empty registry
func New() *Registry {
	return &Registry{
		log:      logger.New("executor"),
		handlers: make(map[familyKey]handler.TransactionHandler),
	}
}

// Register - add a handler for every version it declares
//
// nothing is registered if any of its versions is already taken
func (r *Registry) Register(h handler.TransactionHandler) error {
	name := h.FamilyName()
	if "" == name {
		return fault.ErrEmptyFamilyName
	}
	versions := h.FamilyVersions()
	if 0 == len(versions) {
		return fault.ErrEmptyFamilyVersion
	}

	r.Lock()
	defer r.Unlock()

	for _, version := range versions {
		if "" == version {
			return fault.ErrEmptyFamilyVersion
		}
		if _, ok := r.handlers[familyKey{name, version}]; ok {
			return fmt.Errorf("%w: %s %s", fault.ErrHandlerAlreadyRegistered, name, version)
		}
	}
	for _, version := range versions {
		r.handlers[familyKey{name, version}] = h
		r.log.Infof("registered: %s  version: %s", name, version)
	}
	return nil
}

// Lookup - the handler for a family version
func (r *Registry) Lookup(name string, version string) (handler.TransactionHandler, error) {
	r.RLock()
	defer r.RUnlock()

	h, ok := r.handlers[familyKey{name, version}]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", fault.ErrNoHandlerForFamily, name, version)
	}
	return h, nil
}

// Families - registered "name version" pairs in sorted order
func (r *Registry) Families() []string {
	r.RLock()
	defer r.RUnlock()

	families := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		families = append(families, k.name+" "+k.version)
	}
	sort.Strings(families)
	return families
}

// Execute - apply a transaction and store it with its receipt
//
// state changes, the packed transaction and the receipt are committed
// together; on any error nothing is written
func (r *Registry) Execute(txn *transaction.Transaction) (*state.Receipt, error) {
	family := txn.Header.FamilyName

	err := txn.Verify()
	if nil != err {
		r.log.Warnf("verify: %s", err)
		observe(family, resultRejected)
		return nil, err
	}

	h, err := r.Lookup(family, txn.Header.FamilyVersion)
	if nil != err {
		r.log.Warnf("lookup: %s", err)
		observe(family, resultRejected)
		return nil, err
	}

	id := txn.ID()
	txID, err := hex.DecodeString(id)
	if nil != err {
		observe(family, resultInternal)
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		r.log.Errorf("begin: %s", err)
		observe(family, resultInternal)
		return nil, err
	}

	if trx.Has(storage.Pool.Transactions, txID) {
		trx.Abort()
		observe(family, resultRejected)
		return nil, fmt.Errorf("%w: %s", fault.ErrTransactionApplied, id)
	}

	ctx := state.NewContext(r.log, trx, id)
	err = h.Apply(txn, ctx)
	if nil != err {
		trx.Abort()
		if handler.IsInvalidTransaction(err) {
			r.log.Infof("invalid: %s  error: %s", id, err)
			observe(family, resultInvalid)
		} else {
			r.log.Errorf("apply: %s  error: %s", id, err)
			observe(family, resultInternal)
		}
		return nil, err
	}

	receipt := ctx.Receipt()
	trx.Put(storage.Pool.Transactions, txID, txn.Pack())
	trx.Put(storage.Pool.Receipts, txID, receipt.Pack())

	err = trx.Commit()
	if nil != err {
		r.log.Criticalf("commit: %s  error: %s", id, err)
		observe(family, resultInternal)
		return nil, handler.NewInternalError(err)
	}

	r.log.Infof("applied: %s  family: %s %s", id, family, txn.Header.FamilyVersion)
	observe(family, resultApplied)
	return &receipt, nil
}

// Receipt - the stored receipt of an applied transaction
func Receipt(transactionID string) (*state.Receipt, error) {
	txID, err := hex.DecodeString(transactionID)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrReceiptNotFound, err)
	}
	packed, found := storage.Pool.Receipts.Get(txID)
	if !found {
		return nil, fault.ErrReceiptNotFound
	}
	return state.UnpackReceipt(packed)
}

// Transaction - the stored form of an applied transaction
func Transaction(transactionID string) (*transaction.Transaction, error) {
	txID, err := hex.DecodeString(transactionID)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrTransactionNotFound, err)
	}
	packed, found := storage.Pool.Transactions.Get(txID)
	if !found {
		return nil, fault.ErrTransactionNotFound
	}
	txn, _, err := transaction.Packed(packed).Unpack()
	return txn, err
}
