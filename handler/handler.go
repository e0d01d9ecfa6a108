// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/transact/transaction"
)

// StateEntry - one value in global state
type StateEntry struct {
	Address string `json:"address"`
	Value   []byte `json:"value"`
}

// Attribute - key/value annotation of an event
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TransactionContext - raw access to global state for a single transaction
//
//go:generate mockgen -source=handler.go -destination=mocks/handler.go -package=mocks
type TransactionContext interface {
	GetStateEntries(addresses []string) ([]StateEntry, error)
	SetStateEntries(entries []StateEntry) error
	DeleteStateEntries(addresses []string) ([]string, error)
	AddReceiptData(data []byte) error
	AddEvent(eventType string, attributes []Attribute, data []byte) error
}

// TransactionHandler - a transaction family as seen by the executor
type TransactionHandler interface {
	FamilyName() string
	FamilyVersions() []string
	Apply(txn *transaction.Transaction, ctx TransactionContext) error
}
