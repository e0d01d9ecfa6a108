// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/handler"
	"github.com/bitmark-inc/transact/transaction"
)

// KeyValueTransactionHandler - a transaction family that works on
// natural keys of type K
type KeyValueTransactionHandler[K comparable] interface {
	FamilyName() string
	FamilyVersions() []string
	Addresser() address.Addresser[K]
	Apply(txn *transaction.Transaction, ctx *KeyValueTransactionContext[K]) error
}

// SmartContract - alternative name for a key value handler
type SmartContract[K comparable] interface {
	KeyValueTransactionHandler[K]
}

type adapter[K comparable] struct {
	handler KeyValueTransactionHandler[K]
}

var _ handler.TransactionHandler = adapter[string]{}

// Adapt - present a key value handler to the executor
//
// every Apply gets a fresh KeyValueTransactionContext over the raw
// context; the handler's error is returned unchanged
func Adapt[K comparable](h KeyValueTransactionHandler[K]) handler.TransactionHandler {
	return adapter[K]{
		handler: h,
	}
}

func (a adapter[K]) FamilyName() string {
	return a.handler.FamilyName()
}

func (a adapter[K]) FamilyVersions() []string {
	return a.handler.FamilyVersions()
}

func (a adapter[K]) Apply(txn *transaction.Transaction, ctx handler.TransactionContext) error {
	return a.handler.Apply(txn, NewKeyValueTransactionContext(ctx, a.handler.Addresser()))
}
