// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package executor - apply transactions to global state
//
// handlers are registered per family name and version; Execute runs
// the matching handler inside a single storage transaction which is
// committed together with the transaction and its receipt, or aborted
// if the handler fails
package executor
