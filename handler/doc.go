// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - the boundary between a transaction family and the
// executor that runs it
//
// the executor supplies a TransactionContext addressed by 70 character
// radix addresses; a family implements TransactionHandler and reports
// failures as ApplyError values
package handler
