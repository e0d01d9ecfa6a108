// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
//  1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
//  2. ++       = concatenation of byte data
//  3. address  = 35 byte decoded form of a 70 character radix address
//  4. txId     = transaction digest as 32 byte SHA3-256(packed transaction)
//
// State:
//
//	S ++ address   - global state value
//	                 data: bytes as written by the transaction family
//
// Transactions:
//
//	T ++ txId      - applied transactions
//	                 data: packed transaction
//
// Receipts:
//
//	R ++ txId      - result of an applied transaction
//	                 data: packed receipt (see state.Receipt)
//
// Testing:
//
//	Z ++ key       - testing data
//
// all writes go through a single Transaction: Begin, Put/Delete, then
// Commit or Abort; uncommitted writes are visible to Get and Has
// through the write cache but not to cursors
package storage
