// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package state - global state for a single transaction
//
// Context is the handler.TransactionContext handed to a family while
// its transaction is applied: state entries live in the storage State
// pool keyed by the decoded radix address, receipt data and events are
// collected into a Receipt that the executor stores on commit
package state
