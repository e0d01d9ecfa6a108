// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - natural key access to global state
//
// a KeyValueTransactionContext wraps the raw address based
// handler.TransactionContext and an address.Addresser so that a family
// reads and writes values by its own keys; Adapt turns a key value
// handler into a handler.TransactionHandler for the executor
package contract
